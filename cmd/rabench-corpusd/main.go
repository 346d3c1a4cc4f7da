/*
Rabench-corpusd serves a read-only HTTP introspection view of a corpus
directory that rabench's generate subcommands have already populated:
POST /auth/token to mint a bearer token, then GET /corpora to list files
and GET /corpora/<path> (or /corpora/<path>/summary) to fetch one.

Usage:

	rabench-corpusd [flags]

If a JWT token secret is not given, one is generated randomly and seeded
from crypto/rand, exactly as cmd/tqserver does for its own JWT secret:
every token becomes invalid as soon as the process exits, which is fine
for local inspection but unsuitable for a long-lived deployment.

The flags are:

	-v, --version
		Print the current version and exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address, BIND_ADDRESS:PORT or :PORT. Defaults to
		the RABENCH_CORPUSD_LISTEN_ADDRESS environment variable, then
		localhost:8080.

	-s, --secret TOKEN_SECRET
		Secret used to sign JWTs. Defaults to RABENCH_CORPUSD_TOKEN_SECRET,
		then a randomly generated value.

	-p, --password PASSWORD
		The one operator password accepted by POST /auth/token. Defaults to
		RABENCH_CORPUSD_PASSWORD, then a randomly generated value printed to
		stderr on startup.

	-c, --corpus-dir DIR
		Root of the corpus directory to serve. Defaults to the current
		directory.
*/
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"github.com/dekarrin/rabench/internal/corpusserver"
	"github.com/dekarrin/rabench/internal/version"
)

const (
	EnvListen   = "RABENCH_CORPUSD_LISTEN_ADDRESS"
	EnvSecret   = "RABENCH_CORPUSD_TOKEN_SECRET"
	EnvPassword = "RABENCH_CORPUSD_PASSWORD"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Print the current version and exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Secret used to sign JWTs.")
	flagPass    = pflag.StringP("password", "p", "", "The operator password accepted by POST /auth/token.")
	flagCorpus  = pflag.StringP("corpus-dir", "c", ".", "Root of the corpus directory to serve.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("rabench-corpusd (rabench v%s)\n", version.Current)
		return
	}

	if args := pflag.Args(); len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	addr, port, err := resolveListenAddr()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err)
		os.Exit(1)
	}

	secret := resolveSecret()
	passwordHash, err := resolvePasswordHash()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not hash operator password: %s\n", err)
		os.Exit(1)
	}

	corpusDir := *flagCorpus
	if !pflag.Lookup("corpus-dir").Changed {
		if wd, err := os.Getwd(); err == nil {
			corpusDir = wd
		}
	}

	srv := corpusserver.New(corpusDir, passwordHash, secret)

	listenAddr := fmt.Sprintf("%s:%d", addr, port)
	log.Printf("INFO  Starting rabench-corpusd %s on %s, serving %s...", version.Current, listenAddr, corpusDir)
	log.Fatal(http.ListenAndServe(listenAddr, srv))
}

// resolveListenAddr applies the env-var-then-flag overlay cmd/tqserver
// uses for its own --listen flag, defaulting to localhost:8080.
func resolveListenAddr() (addr string, port int, err error) {
	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr == "" {
		return "localhost", 8080, nil
	}

	bindParts := strings.SplitN(listenAddr, ":", 2)
	if len(bindParts) != 2 {
		return "", 0, fmt.Errorf("listen address %q is not in ADDRESS:PORT or :PORT format", listenAddr)
	}
	addr = bindParts[0]
	if addr == "" {
		addr = "localhost"
	}
	port, convErr := strconv.Atoi(bindParts[1])
	if convErr != nil {
		return "", 0, fmt.Errorf("%q is not a valid port number", bindParts[1])
	}
	return addr, port, nil
}

// resolveSecret applies the env-var-then-flag overlay cmd/tqserver uses
// for its JWT secret, generating a random one (with a startup warning,
// since it will invalidate every token at shutdown) when neither is set.
func resolveSecret() []byte {
	secretStr := os.Getenv(EnvSecret)
	if pflag.Lookup("secret").Changed {
		secretStr = *flagSecret
	}
	if secretStr != "" {
		return []byte(secretStr)
	}

	secret := make([]byte, 64)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("FATAL could not generate token secret: %s", err)
	}
	log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
	return secret
}

// resolvePasswordHash resolves the one operator password from flag, env,
// or a freshly generated random value (printed to stderr so the operator
// can actually authenticate), and bcrypt-hashes it for corpusserver.New.
func resolvePasswordHash() ([]byte, error) {
	password := os.Getenv(EnvPassword)
	if pflag.Lookup("password").Changed {
		password = *flagPass
	}
	if password == "" {
		raw := make([]byte, 18)
		if _, err := rand.Read(raw); err != nil {
			log.Fatalf("FATAL could not generate operator password: %s", err)
		}
		password = fmt.Sprintf("%x", raw)
		fmt.Fprintf(os.Stderr, "WARN  Using generated operator password: %s\n", password)
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
