/*
File    : pidgin-go/std/crypto.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package std

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins,
		&Builtin{Name: "sha256Hex", Callback: sha256HexFunc},
		&Builtin{Name: "randomBytes", Callback: randomBytesFunc},
		&Builtin{Name: "base64Encode", Callback: base64EncodeFunc},
		&Builtin{Name: "base64Decode", Callback: base64DecodeFunc},
		&Builtin{Name: "hexEncode", Callback: hexEncodeFunc},
		&Builtin{Name: "hexDecode", Callback: hexDecodeFunc},
	)
}

func sha256HexFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: sha256Hex expects 1 argument (string)")
	}
	sum := sha256.Sum256([]byte(args[0].ToString()))
	return &objects.String{Value: fmt.Sprintf("%x", sum)}
}

// randomBytesFunc returns n random bytes hex-encoded as a string.
func randomBytesFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: randomBytes expects 1 argument (count)")
	}
	n, ok := args[0].(*objects.Number)
	if !ok || n.Value < 0 {
		return errf("ERROR: randomBytes expects a non-negative number")
	}
	buf := make([]byte, int(n.Value))
	if _, err := rand.Read(buf); err != nil {
		return errf("ERROR: randomBytes failed: %v", err)
	}
	return &objects.String{Value: hex.EncodeToString(buf)}
}

func base64EncodeFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: base64Encode expects 1 argument (string)")
	}
	return &objects.String{Value: base64.StdEncoding.EncodeToString([]byte(args[0].ToString()))}
}

func base64DecodeFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: base64Decode expects 1 argument (string)")
	}
	decoded, err := base64.StdEncoding.DecodeString(args[0].ToString())
	if err != nil {
		return errf("ERROR: invalid base64 input: %v", err)
	}
	return &objects.String{Value: string(decoded)}
}

func hexEncodeFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: hexEncode expects 1 argument (string)")
	}
	return &objects.String{Value: hex.EncodeToString([]byte(args[0].ToString()))}
}

func hexDecodeFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: hexDecode expects 1 argument (string)")
	}
	decoded, err := hex.DecodeString(args[0].ToString())
	if err != nil {
		return errf("ERROR: invalid hex input: %v", err)
	}
	return &objects.String{Value: string(decoded)}
}
