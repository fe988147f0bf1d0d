package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Addresses returns the image addresses in ascending order. The keys are
// fixed-width bit strings, so string order is numeric order.
func (image BinaryImage) Addresses() []string {
	addresses := make([]string, 0, len(image))
	for address := range image {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	return addresses
}

// Listing renders the image as one "address word" line per assembled word, in
// address order.
func (image BinaryImage) Listing() string {
	bf := bytes.Buffer{}
	for _, address := range image.Addresses() {
		bf.WriteString(fmt.Sprintf("%s %s\n", address, image[address]))
	}
	return bf.String()
}

// SaveToFile writes the listing to path.
func (image BinaryImage) SaveToFile(path string) error {
	return os.WriteFile(path, []byte(image.Listing()), 0666)
}

// SaveJSON writes the image to path as an indented json object keyed by
// address, for tooling that would rather not parse the listing.
func (image BinaryImage) SaveJSON(path string) error {
	data, err := json.MarshalIndent(image, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}
