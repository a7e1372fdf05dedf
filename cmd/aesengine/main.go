// Command aesengine is a minimal demonstration of the aes core: it
// reads a plaintext or ciphertext stream from stdin and writes the
// result of processing it one block at a time to stdout.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ny0m/aesengine"
)

func main() {
	flag.Parse()

	keyStr := os.Getenv("AES_KEY")
	engine, err := aes.Construct([]byte(keyStr))
	if err != nil {
		log.Fatal("invalid AES_KEY: ", err)
	}

	var op func(dst, src []byte)
	switch a := flag.Arg(0); a {
	case "encrypt":
		op = engine.Encrypt
	case "decrypt":
		op = engine.Decrypt
	default:
		log.Fatal("invalid op (want encrypt or decrypt): ", a)
	}

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal("error reading from stdin: ", err)
	}
	if len(in)%aes.BlockSize != 0 {
		log.Fatalf("input length %d is not a multiple of the block size %d", len(in), aes.BlockSize)
	}

	out := make([]byte, len(in))
	for i := 0; i < len(in); i += aes.BlockSize {
		op(out[i:i+aes.BlockSize], in[i:i+aes.BlockSize])
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal("failed to write to stdout: ", err)
	}
}
