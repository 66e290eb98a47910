package storage

import "github.com/fxamacker/cbor/v2"

func encode[T any](value T) ([]byte, error) {
	return cbor.Marshal(value)
}

func decode[T any](data []byte) (T, error) {
	var value T
	err := cbor.Unmarshal(data, &value)
	return value, err
}
