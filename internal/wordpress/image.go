package wordpress

import (
	"bytes"
	"encoding/json"
)

// imageKeys are probed in priority order when the image reference is an
// object. The list covers the shapes seen across WordPress media exports:
// plugin fields first, then the REST media sizes.
var imageKeys = []string{
	"imageUrl",
	"url",
	"source_url",
	"guid",
	"thumbnail",
	"medium",
	"large",
	"full",
	"original",
}

// ExtractImageURL pulls a single source URL out of an arbitrarily shaped
// image reference. Strings are cleaned and returned; arrays are searched
// left to right, depth first; objects are probed by imageKeys and then by
// every remaining member in document order. Numbers, booleans and null
// yield "". Input comes from json.Unmarshal and is therefore acyclic.
func ExtractImageURL(raw json.RawMessage) string {
	value := bytes.TrimSpace(raw)
	if len(value) == 0 {
		return ""
	}

	switch value[0] {
	case '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return ""
		}
		return CleanText(s)

	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(value, &items); err != nil {
			return ""
		}
		for _, item := range items {
			if found := ExtractImageURL(item); found != "" {
				return found
			}
		}
		return ""

	case '{':
		members, err := objectMembers(value)
		if err != nil {
			return ""
		}
		byKey := make(map[string]json.RawMessage, len(members))
		for _, m := range members {
			byKey[m.key] = m.value
		}
		for _, key := range imageKeys {
			if v, ok := byKey[key]; ok {
				if found := ExtractImageURL(v); found != "" {
					return found
				}
			}
		}
		for _, m := range members {
			if found := ExtractImageURL(m.value); found != "" {
				return found
			}
		}
		return ""

	default:
		return ""
	}
}

type objectMember struct {
	key   string
	value json.RawMessage
}

// objectMembers decodes an object into key/value pairs preserving document
// order, which a map[string]json.RawMessage would lose.
func objectMembers(data []byte) ([]objectMember, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var members []objectMember
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		members = append(members, objectMember{key: key, value: value})
	}
	return members, nil
}
