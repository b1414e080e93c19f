package models

import "encoding/json"

// EncodeImages serializes a list of image URLs for the Product.Images column.
func EncodeImages(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	data, err := json.Marshal(urls)
	if err != nil {
		return ""
	}
	return string(data)
}

// DecodeImages parses the Product.Images column back into a URL list.
// Malformed or empty values decode to nil.
func DecodeImages(images string) []string {
	if images == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(images), &urls); err != nil {
		return nil
	}
	return urls
}
