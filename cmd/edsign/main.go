package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/choria-io/fisk"

	"github.com/davidahmann/edsign/internal/canonical"
	"github.com/davidahmann/edsign/internal/config"
	"github.com/davidahmann/edsign/internal/crypto"
	"github.com/davidahmann/edsign/internal/encoding"
	"github.com/davidahmann/edsign/internal/logging"
	"github.com/davidahmann/edsign/internal/seed"
)

// Version is set at build time.
var Version = "development"

var errMessageSource = errors.New("exactly one of --message, --message-file or --json-file is required")

func main() {
	exitFn(run(os.Args, os.Stdout, os.Stderr))
}

var exitFn = os.Exit

type cli struct {
	stdout io.Writer
	stderr io.Writer

	configPath   string
	encodingName string
	debug        bool

	seed       string
	passphrase string
	hash       string

	key       string
	publicKey string
	signature string

	message     string
	messageFile string
	jsonFile    string

	canonicalFile string

	enc     encoding.Encoding
	cfg     config.Config
	service *crypto.SigningService
	logFile io.Closer
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}

	app := fisk.New("edsign", "Deterministic Ed25519 key derivation, signing and verification")
	app.Version(Version)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	// help and version output end the run without exiting the process
	exit := -1
	app.Terminate(func(code int) {
		if exit < 0 {
			exit = code
		}
	})
	app.Flag("config", "Configuration file to use").Envar("EDSIGN_CONFIG_PATH").PlaceHolder("FILE").StringVar(&c.configPath)
	app.Flag("encoding", "Text encoding for keys, signatures and messages").EnumVar(&c.encodingName, encoding.Names()...)
	app.Flag("debug", "Enable debug logging").UnNegatableBoolVar(&c.debug)

	keypairCmd := app.Command("keypair", "Derive a keypair from a seed or passphrase")
	keypairCmd.Flag("seed", "32 byte seed in the selected encoding").StringVar(&c.seed)
	keypairCmd.Flag("passphrase", "Passphrase hashed into a seed").StringVar(&c.passphrase)
	keypairCmd.Flag("hash", "Hash used to turn a passphrase into a seed").EnumVar(&c.hash, seed.Algorithms()...)

	signCmd := app.Command("sign", "Sign a message with a private key")
	signCmd.Flag("key", "64 byte private key in the selected encoding").Required().StringVar(&c.key)
	c.messageFlags(signCmd)

	verifyCmd := app.Command("verify", "Verify a detached signature")
	verifyCmd.Flag("public-key", "32 byte public key in the selected encoding").Required().StringVar(&c.publicKey)
	verifyCmd.Flag("signature", "64 byte signature in the selected encoding").Required().StringVar(&c.signature)
	c.messageFlags(verifyCmd)

	seedCmd := app.Command("seed", "Hash a passphrase into a 32 byte seed")
	seedCmd.Flag("passphrase", "Passphrase to hash").Required().StringVar(&c.passphrase)
	seedCmd.Flag("hash", "Hash algorithm").EnumVar(&c.hash, seed.Algorithms()...)

	canonicalCmd := app.Command("canonical", "Print the canonical JSON form of a file")
	canonicalCmd.Arg("file", "JSON file to canonicalize").Required().StringVar(&c.canonicalFile)

	if len(args) < 2 {
		fmt.Fprintln(stderr, "usage: edsign [<flags>] <command> [<args> ...], try --help")
		return 2
	}

	command, err := app.Parse(args[1:])
	switch {
	case exit == 0:
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "edsign: %v, try --help\n", err)
		return 2
	case exit > 0:
		return 2
	}

	if err := c.setup(); err != nil {
		fmt.Fprintf(stderr, "edsign: %v\n", err)
		return 2
	}
	defer c.logFile.Close()

	switch command {
	case keypairCmd.FullCommand():
		return c.keypairCommand()
	case signCmd.FullCommand():
		return c.signCommand()
	case verifyCmd.FullCommand():
		return c.verifyCommand()
	case seedCmd.FullCommand():
		return c.seedCommand()
	case canonicalCmd.FullCommand():
		return c.canonicalCommand()
	default:
		fmt.Fprintf(stderr, "edsign: unknown command %q\n", command)
		return 2
	}
}

func (c *cli) messageFlags(cmd *fisk.CmdClause) {
	cmd.Flag("message", "Message in the selected encoding").StringVar(&c.message)
	cmd.Flag("message-file", "File whose raw bytes are the message").PlaceHolder("FILE").StringVar(&c.messageFile)
	cmd.Flag("json-file", "JSON file signed in canonical form").PlaceHolder("FILE").StringVar(&c.jsonFile)
}

func (c *cli) setup() error {
	c.cfg = config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = loaded
	}
	if c.debug {
		c.cfg.Log.Level = "debug"
	}

	enc, err := encoding.Parse(firstNonEmpty(c.encodingName, c.cfg.Encoding))
	if err != nil {
		return err
	}
	c.enc = enc

	primitive, err := crypto.PrimitiveByName(c.cfg.Signing.Primitive)
	if err != nil {
		return err
	}

	log, logFile, err := logging.New(c.cfg.Log, c.stderr)
	if err != nil {
		return err
	}
	c.logFile = logFile

	c.service = crypto.NewSigningService(
		crypto.WithPrimitive(primitive),
		crypto.WithLogger(log.WithField("component", "cli")),
	)
	return nil
}

func (c *cli) keypairCommand() int {
	if (c.seed == "") == (c.passphrase == "") {
		fmt.Fprintln(c.stderr, "keypair requires exactly one of --seed or --passphrase")
		return 2
	}

	var material []byte
	if c.seed != "" {
		decoded, err := c.enc.Decode(c.seed)
		if err != nil {
			return c.fail("seed", err)
		}
		material = decoded
	} else {
		derived, err := c.passphraseSeed()
		if err != nil {
			return c.fail("seed", err)
		}
		material = derived[:]
	}

	kp, err := c.service.DeriveKeypair(material)
	if err != nil {
		return c.fail("keypair", err)
	}

	fmt.Fprintf(c.stdout, "public_key=%s\n", c.enc.Encode(kp.PublicKey[:]))
	fmt.Fprintf(c.stdout, "private_key=%s\n", c.enc.Encode(kp.PrivateKey[:]))
	return 0
}

func (c *cli) signCommand() int {
	key, err := c.enc.Decode(c.key)
	if err != nil {
		return c.fail("key", err)
	}
	message, code := c.readMessage()
	if code != 0 {
		return code
	}

	sig, err := c.service.Sign(message, key)
	if err != nil {
		return c.fail("sign", err)
	}

	fmt.Fprintf(c.stdout, "signature=%s\n", c.enc.Encode(sig[:]))
	return 0
}

func (c *cli) verifyCommand() int {
	pub, err := c.enc.Decode(c.publicKey)
	if err != nil {
		return c.fail("public key", err)
	}
	sig, err := c.enc.Decode(c.signature)
	if err != nil {
		return c.fail("signature", err)
	}
	message, code := c.readMessage()
	if code != 0 {
		return code
	}

	ok, err := c.service.Verify(message, sig, pub)
	if err != nil {
		return c.fail("verify", err)
	}

	fmt.Fprintf(c.stdout, "valid=%t\n", ok)
	if !ok {
		return 1
	}
	return 0
}

func (c *cli) seedCommand() int {
	derived, err := c.passphraseSeed()
	if err != nil {
		return c.fail("seed", err)
	}
	fmt.Fprintf(c.stdout, "seed=%s\n", c.enc.Encode(derived[:]))
	return 0
}

func (c *cli) canonicalCommand() int {
	// #nosec G304 -- path is provided by the operator.
	raw, err := os.ReadFile(c.canonicalFile)
	if err != nil {
		return c.fail("read", err)
	}
	out, err := canonical.FromJSON(raw)
	if err != nil {
		return c.fail("canonical", err)
	}
	_, _ = c.stdout.Write(out)
	return 0
}

func (c *cli) passphraseSeed() (crypto.Seed, error) {
	alg, err := seed.ParseAlgorithm(firstNonEmpty(c.hash, c.cfg.Signing.SeedHash))
	if err != nil {
		return crypto.Seed{}, err
	}
	return seed.FromPassphrase(alg, []byte(c.passphrase))
}

// readMessage returns the message bytes and a non-zero exit code on failure.
func (c *cli) readMessage() ([]byte, int) {
	sources := 0
	for _, s := range []string{c.message, c.messageFile, c.jsonFile} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		fmt.Fprintln(c.stderr, errMessageSource)
		return nil, 2
	}

	switch {
	case c.message != "":
		msg, err := c.enc.Decode(c.message)
		if err != nil {
			return nil, c.fail("message", err)
		}
		return msg, 0
	case c.messageFile != "":
		// #nosec G304 -- path is provided by the operator.
		msg, err := os.ReadFile(c.messageFile)
		if err != nil {
			return nil, c.fail("message", err)
		}
		return msg, 0
	default:
		// #nosec G304 -- path is provided by the operator.
		raw, err := os.ReadFile(c.jsonFile)
		if err != nil {
			return nil, c.fail("message", err)
		}
		msg, err := canonical.FromJSON(raw)
		if err != nil {
			return nil, c.fail("message", err)
		}
		return msg, 0
	}
}

func (c *cli) fail(what string, err error) int {
	fmt.Fprintf(c.stderr, "%s failed: %v\n", what, err)
	return 1
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
