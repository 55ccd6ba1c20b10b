// Package commandline contains helper types for collecting
// command-line arguments.
package commandline // import "github.com/CognitoIQ/soapspec/internal/commandline"

import (
	"strings"
)

// The Strings type can be used to collect multiple command-line options,
// in the order provided. wsdl2spec uses it for the repeatable -xsd flag.
type Strings []string

func (s *Strings) String() string {
	return strings.Join(*s, ",")
}

func (s *Strings) Set(val string) error {
	*s = append(*s, val)
	return nil
}
