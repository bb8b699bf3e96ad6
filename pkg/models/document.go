package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Document is a database document: the system attributes Appwrite manages
// plus the collection's own fields in Data.
type Document struct {
	ID           string
	CollectionID string
	DatabaseID   string
	CreatedAt    string
	UpdatedAt    string
	Permissions  []string

	Data map[string]any
}

type DocumentList struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}

// UnmarshalJSON splits "$"-prefixed system attributes from user fields.
func (d *Document) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	system := map[string]*string{
		"$id":           &d.ID,
		"$collectionId": &d.CollectionID,
		"$databaseId":   &d.DatabaseID,
		"$createdAt":    &d.CreatedAt,
		"$updatedAt":    &d.UpdatedAt,
	}

	d.Data = make(map[string]any, len(raw))
	for k, v := range raw {
		if dst, ok := system[k]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				return fmt.Errorf("document attribute %s: %w", k, err)
			}
			continue
		}
		if k == "$permissions" {
			if err := json.Unmarshal(v, &d.Permissions); err != nil {
				return fmt.Errorf("document attribute %s: %w", k, err)
			}
			continue
		}
		if strings.HasPrefix(k, "$") {
			// Other system attributes ($sequence, $tenant...) are not modelled.
			continue
		}
		val, err := decodeValue(v)
		if err != nil {
			return fmt.Errorf("document attribute %s: %w", k, err)
		}
		d.Data[k] = val
	}
	return nil
}

// decodeValue keeps numbers as json.Number so 64-bit integer attributes
// survive a round trip.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var val any
	if err := dec.Decode(&val); err != nil {
		return nil, err
	}
	return val, nil
}

// MarshalJSON writes the document back in Appwrite's flat shape.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Data)+6)
	for k, v := range d.Data {
		out[k] = v
	}
	out["$id"] = d.ID
	out["$collectionId"] = d.CollectionID
	out["$databaseId"] = d.DatabaseID
	out["$createdAt"] = d.CreatedAt
	out["$updatedAt"] = d.UpdatedAt
	perms := d.Permissions
	if perms == nil {
		perms = []string{}
	}
	out["$permissions"] = perms
	return json.Marshal(out)
}

// Decode converts the document into v, typically a struct with json tags.
// System attributes are available under their "$" names.
func (d Document) Decode(v any) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
