package pets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Formato del snapshot: un único array JSON de arrays de 3 strings,
// [name, species, owner], sin envelope ni versión.
//
//	[["Fido","Dog","Alice"],["Whiskers","Cat","Bob"]]

// EncodeJSON serializa las mascotas en el orden recibido.
func EncodeJSON(items []Pet) ([]byte, error) {
	rows := make([][3]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, [3]string{p.Name, p.Species, p.Owner})
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return b, nil
}

// DecodeJSON parsea y valida un snapshot completo. Devuelve ErrFormat si la
// forma no es la esperada y ErrDuplicateName si un nombre se repite.
func DecodeJSON(b []byte) ([]Pet, error) {
	dec := json.NewDecoder(bytes.NewReader(b))

	var rows []json.RawMessage
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if rows == nil {
		return nil, fmt.Errorf("%w: expected array", ErrFormat)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after array", ErrFormat)
	}

	// El registro temporal detecta duplicados igual que Add.
	tmp := NewRegistry()
	for i, raw := range rows {
		p, err := decodeRow(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrFormat, i, err)
		}
		if err := tmp.Add(p.Name, p.Species, p.Owner); err != nil {
			return nil, err
		}
	}
	return tmp.Records(), nil
}

func decodeRow(raw json.RawMessage) (Pet, error) {
	var fields []*string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Pet{}, err
	}
	if len(fields) != 3 {
		return Pet{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	for _, f := range fields {
		// null decodifica a nil; sólo aceptamos strings.
		if f == nil {
			return Pet{}, fmt.Errorf("fields must be strings")
		}
	}
	return Pet{Name: *fields[0], Species: *fields[1], Owner: *fields[2]}, nil
}
