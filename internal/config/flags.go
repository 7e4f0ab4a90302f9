package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags from args (without the program
// name). Unknown flags produce an error instead of exiting the process.
//
// Flags:
//
//	-a web front end address in format [host]:[port]
//	-api-address development posts API address in format [host]:[port]
//	-api-base-path path prefix of the posts API routes
//	-d client settings database DSN
//	-posts-driver posts storage driver (memory, sqlite3, pgx)
//	-posts-dsn posts storage DSN
//	-request-timeout outbound API request timeout (e.g., "30s", "1m")
//	-log-file terminal client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var webAddress, apiAddress NetAddress
	var apiBasePath string
	var settingsDSN string
	var postsDriver, postsDSN string
	var requestTimeout time.Duration
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&webAddress, "a", "Web front end address host:port")
	fs.Var(&apiAddress, "api-address", "Posts API address host:port")
	fs.StringVar(&apiBasePath, "api-base-path", "", "Posts API base path")
	fs.StringVar(&settingsDSN, "d", "", "Client settings database DSN")
	fs.StringVar(&postsDriver, "posts-driver", "", "Posts storage driver (memory, sqlite3, pgx)")
	fs.StringVar(&postsDSN, "posts-dsn", "", "Posts storage DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: settingsDSN,
			},
			Posts: PostsDB{
				Driver: postsDriver,
				DSN:    postsDSN,
			},
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Web: Server{
			HTTPAddress: webAddress.String(),
		},
		API: Server{
			HTTPAddress: apiAddress.String(),
			BasePath:    apiBasePath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "posts-client"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
