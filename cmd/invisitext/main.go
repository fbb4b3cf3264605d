// Command invisitext hides secret messages in plain text files using
// zero-width steganography.
//
// Encoding:
//
//	invisitext encode -c carrier.txt -s secret.txt -o output.txt
//
// Decoding:
//
//	invisitext decode -i output.txt
//
// Capacity and marker analysis:
//
//	invisitext analyze -c carrier.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/mohammadd13579/invisitext"
	"github.com/mohammadd13579/invisitext/analysis"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("invisitext: ")
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "analyze":
		err = runAnalyze(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		log.Printf("unknown command %q", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  invisitext encode -c CARRIER_FILE -s SECRET_FILE -o OUTPUT_FILE
  invisitext decode -i INPUT_FILE
  invisitext analyze -c FILE

Hide secret messages in plain text using zero-width steganography.
Pass -s - to read the secret from stdin instead of a file.`)
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	carrier := fs.String("c", "", "path to the carrier text file (required)")
	secret := fs.String("s", "", `path to the secret text file, or "-" for stdin (required)`)
	output := fs.String("o", "", "path to write the steganographic text file (required)")
	verbose := fs.Bool("v", false, "log the embedded bit-stream")
	fs.Parse(args)
	if *carrier == "" || *secret == "" || *output == "" {
		fs.Usage()
		return errors.New("encode: -c, -s and -o are all required")
	}

	carrierText, err := os.ReadFile(*carrier)
	if err != nil {
		return err
	}
	secretText, err := readSecret(*secret)
	if err != nil {
		return err
	}

	report := analysis.Report(string(carrierText))
	log.Printf("carrier has %d bit-slots available", report.CapacityBits)

	stego, err := invisitext.Encode(string(carrierText), string(secretText))
	if err != nil {
		return err
	}
	if *verbose {
		inspect := analysis.Inspect(stego)
		log.Printf("embedded %d-bit stream: %s", inspect.Markers, inspect.Stream)
	}
	if err := os.WriteFile(*output, []byte(stego), 0o644); err != nil {
		return err
	}
	log.Printf("encoded secret message into %s (%d bytes of hidden data)", *output, len(stego)-len(carrierText))
	return nil
}

// readSecret reads the secret from a file, or from stdin when path is "-".
// On a terminal the secret is prompted for without echo.
func readSecret(path string) ([]byte, error) {
	if path != "-" {
		return os.ReadFile(path)
	}
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Secret message: ")
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return secret, err
	}
	return io.ReadAll(os.Stdin)
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	input := fs.String("i", "", "path to the steganographic text file (required)")
	fs.Parse(args)
	if *input == "" {
		fs.Usage()
		return errors.New("decode: -i is required")
	}

	stego, err := os.ReadFile(*input)
	if err != nil {
		return err
	}
	secret, err := invisitext.Decode(string(stego))
	if errors.Is(err, invisitext.ErrNoMessage) {
		log.Print("could not decode a message")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(secret)
	return nil
}

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	file := fs.String("c", "", "path to the text file to analyze (required)")
	fs.Parse(args)
	if *file == "" {
		fs.Usage()
		return errors.New("analyze: -c is required")
	}

	b, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	text := string(b)

	report := analysis.Report(text)
	fmt.Printf("tokens:         %d\n", report.Tokens)
	fmt.Printf("capacity:       %d bits (%d payload bytes)\n", report.CapacityBits, report.CapacityBytes)
	fmt.Printf("token length:   mean %.1f, stddev %.1f\n", report.MeanTokenLen, report.StdevTokenLen)

	inspect := analysis.Inspect(text)
	if inspect.Markers == 0 {
		fmt.Println("hidden stream:  none")
		return nil
	}
	fmt.Printf("hidden stream:  %d markers (%d zeros, %d ones)\n", inspect.Markers, inspect.Zeros, inspect.Ones)
	fmt.Printf("bit entropy:    %.3f nats\n", inspect.BitEntropy)
	fmt.Printf("marker density: %.2f per gap\n", inspect.Density)
	fmt.Printf("survives NFC:   %v\n", analysis.SurvivesNormalization(text, norm.NFC))
	fmt.Printf("survives NFKC:  %v\n", analysis.SurvivesNormalization(text, norm.NFKC))
	return nil
}
