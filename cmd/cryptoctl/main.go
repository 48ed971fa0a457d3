// cryptoctl runs the crypto API operations (encrypt, decrypt, sign, verify) from the command line.
package main

import "github.com/information-sharing-networks/crypto-api/internal/cli"

func main() {
	cli.Execute()
}
