/*
File    : pidgin-go/std/http.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package std

import (
	"io"
	"net/http"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins, &Builtin{Name: "httpGet", Callback: httpGetFunc})
}

// httpGetFunc performs a GET request and returns the response body as a
// String. A non-2xx status or transport failure is reported as an error.
func httpGetFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: httpGet expects 1 argument (url)")
	}
	url := args[0].ToString()
	resp, err := http.Get(url)
	if err != nil {
		return errf("ERROR: httpGet request failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errf("ERROR: httpGet could not read response body: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errf("ERROR: httpGet received status %d from %s", resp.StatusCode, url)
	}
	return &objects.String{Value: string(body)}
}
