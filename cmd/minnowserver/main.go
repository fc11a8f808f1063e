/*
Minnowserver starts a Minnow server and begins listening for new connections.

Usage:

	minnowserver [flags]
	minnowserver [flags] -l [[ADDRESS]:PORT]

Once started, the Minnow server will listen for HTTP requests and respond to
them using REST protocol. By default, it will listen on localhost:8080. This
can be changed with the --listen/-l flag (or config via environment var). The
flag argument must be either a full address with port, such as
"192.168.0.2:6001", or just the port preceeded by a colon, such as ":6001".

If a JWT token secret is not given, one will be automatically generated. As a
consequence, in this mode of operation all tokens are rendered invalid as soon
as the server shuts down. This is suitable for testing, but must be given via
either CLI flags, config file, or environment variable if running in
production.

The flags are:

	-v, --version
		Give the current version of the Minnow server and then exit.

	-c, --conf FILE
		Load server configuration from the given TOML file. Values given on
		the command line or via environment variables take precedence over
		values in the file.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment
		variable MINNOW_LISTEN_ADDRESS, and if that is not given, will default
		to localhost:8080.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWT tokens. If there are less than
		32 bytes in the secret, it will be repeated until it is. The maximum
		size is 64 bytes. If not given, will default to the value of
		environment variable MINNOW_TOKEN_SECRET. If no secret is specified or
		an empty secret is given, a random secret will be automatically
		generated. Note that any tokens issued with a random secret will
		become invalid as soon as the server shuts down.

	--db DRIVER[:PARAMS]
		Use the given DB connection string. DRIVER must be one of the
		following: inmem, sqlite. inmem has no further params. sqlite needs
		the path to the data directory such as sqlite:path/to/db_dir. If not
		given, will default to the value of environment variable
		MINNOW_DATABASE. If no DB driver is specified or an empty one is
		given, an in-memory database is automatically selected.
*/
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dekarrin/minnow/internal/version"
	"github.com/dekarrin/minnow/server"
	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/minnow/server/serr"
	"github.com/spf13/pflag"
)

const (
	EnvListen = "MINNOW_LISTEN_ADDRESS"
	EnvSecret = "MINNOW_TOKEN_SECRET"
	EnvDB     = "MINNOW_DATABASE"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of Minnow server and then exit.")
	flagConf    = pflag.StringP("conf", "c", "", "Load server configuration from the given TOML file.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for token generation.")
	flagDB      = pflag.String("db", "", "Use the given DB connection string.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (Minnow v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	args := pflag.Args()

	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	// start from the config file if one was given
	var cfg server.Config
	if *flagConf != "" {
		var err error
		cfg, err = server.LoadConfigFile(*flagConf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err)
			os.Exit(1)
		}
	}

	// get address info
	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr != "" {
		bindParts := strings.SplitN(listenAddr, ":", 2)
		if len(bindParts) != 2 {
			fmt.Fprintf(os.Stderr, "Listen address is not in ADDRESS:PORT or :PORT format.\nDo -h for help.\n")
			os.Exit(1)
		}

		var err error

		cfg.Address = bindParts[0]
		cfg.Port, err = strconv.Atoi(bindParts[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%q is not a valid port number.\nDo -h for help.\n", bindParts[1])
			os.Exit(1)
		}
	}

	// look at db connection string
	dbConnStr := os.Getenv(EnvDB)
	if pflag.Lookup("db").Changed {
		dbConnStr = *flagDB
	}
	if dbConnStr != "" {
		db, err := server.ParseDBConnString(dbConnStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err)
			os.Exit(1)
		}
		cfg.DB = db
	}

	// get token secret
	tokSecStr := os.Getenv(EnvSecret)
	if pflag.Lookup("secret").Changed {
		tokSecStr = *flagSecret
	}
	// was the secret given?
	if tokSecStr != "" {
		// if so, validate it
		tokSecret := []byte(tokSecStr)

		for len(tokSecret) < server.MinSecretSize {
			doubledTokSecret := make([]byte, len(tokSecret)*2)
			copy(doubledTokSecret, tokSecret)
			copy(doubledTokSecret[len(tokSecret):], tokSecret)
			tokSecret = doubledTokSecret
		}

		if len(tokSecret) > server.MaxSecretSize {
			// keys would be chopped at 64, so rather than the user thinking
			// they have more security by giving a longer key, refuse to start.
			fmt.Fprintf(os.Stderr, "Token secret is %d bytes, but it must be <= %d bytes\nDo -h for help.\n", len(tokSecret), server.MaxSecretSize)
			os.Exit(1)
		}

		cfg.TokenSecret = tokSecret
	} else if cfg.TokenSecret == nil {
		// generate a new one

		// use all 64 possible bytes if doing a generated secret
		tokSecret := make([]byte, server.MaxSecretSize)
		_, err := rand.Read(tokSecret)
		if err != nil {
			log.Fatalf("FATAL could not generate token secret: %s", err.Error())
		}
		cfg.TokenSecret = tokSecret

		// yell at the user bc they should know their secret might be bad
		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
	}

	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL invalid configuration: %s", err.Error())
	}

	// configuration complete, initialize the server
	ms, err := server.New(cfg)
	if err != nil {
		log.Fatalf("FATAL could not start server: %s", err.Error())
	}
	log.Printf("DEBUG Server initialized")

	// immediately create the admin user so we have someone we can log in as.
	_, err = ms.Backend().CreateUser(context.Background(), "admin", "password", "bogus@example.com", dao.Admin)
	if err != nil && !errors.Is(err, serr.ErrAlreadyExists) {
		log.Printf("ERROR could not create initial admin user: %v", err)
		os.Exit(2)
	}
	if !errors.Is(err, serr.ErrAlreadyExists) {
		log.Printf("INFO  Added initial admin user with password 'password'...")
	}

	// okay, now actually launch it
	log.Printf("INFO  Starting Minnow server %s...", version.ServerCurrent)
	ms.ServeForever(cfg.Address, cfg.Port)
}
