package pretty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

// PrettyWriter uses json marshal to pretty output an interface object
func PrettyWriter(writer io.Writer, object interface{}) error {
	return PrefixPrettyWriter(writer, "", object)
}

// PrefixPrettyWriter uses json marshal to pretty output an interface object
func PrefixPrettyWriter(writer io.Writer, prefix string, object interface{}) error {
	objectString, err := json.Marshal(object)
	if err != nil {
		return err
	}

	if prefix != "" {
		prefix += ": "
	}

	_, err = fmt.Fprintf(writer, "%s%s", prefix, pretty.Pretty(objectString))
	return err
}

// YAMLWriter outputs an interface object as yaml
func YAMLWriter(writer io.Writer, object interface{}) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	err := encoder.Encode(object)
	if err != nil {
		return err
	}
	return encoder.Close()
}

func PrettyString(object interface{}) string {
	var buf bytes.Buffer
	err := PrettyWriter(&buf, object)
	if err != nil {
		return err.Error()
	}
	return buf.String()
}
