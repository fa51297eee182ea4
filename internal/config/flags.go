package config

import (
	"errors"
	"flag"
	"io"
	"net"
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

// parseFlags parses the server command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-backend storage backend (postgres, firestore)
//	-redis session store redis address
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token and session lifetime (e.g., "24h")
//	-identity identity provider (password, firebase)
//	-firebase-project firebase project id
//	-firebase-credentials service account key file
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-report-dir directory for monthly CSV reports
//	-report-schedule cron schedule of the monthly report
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, backend, redisAddress string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, identityProvider string
	var tokenDuration, requestTimeout time.Duration
	var firebaseProject, firebaseCredentials string
	var reportDir, reportSchedule string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&backend, "backend", "", "Storage backend (postgres, firestore)")
	fs.StringVar(&redisAddress, "redis", "", "Session store redis address")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&identityProvider, "identity", "", "Identity provider (password, firebase)")
	fs.StringVar(&firebaseProject, "firebase-project", "", "Firebase project id")
	fs.StringVar(&firebaseCredentials, "firebase-credentials", "", "Firebase service account key file")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&reportDir, "report-dir", "", "Monthly report directory")
	fs.StringVar(&reportSchedule, "report-schedule", "", "Monthly report cron schedule")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			IdentityProvider: identityProvider,
		},
		Firebase: Firebase{
			ProjectID:       firebaseProject,
			CredentialsFile: firebaseCredentials,
		},
		Storage: Storage{
			Backend:  backend,
			DB:       DB{DSN: databaseDSN},
			Sessions: Sessions{RedisAddress: redisAddress},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ReportSchedule: reportSchedule,
			ReportDir:      reportDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
