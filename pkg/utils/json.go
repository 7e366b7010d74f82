package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson indenta o valor informado para uso em logs de depuração.
// Em caso de erro de serialização retorna a representação vazia.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
