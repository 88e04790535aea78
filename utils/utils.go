package utils

import (
	"crypto/sha1"
	"fmt"
)

type ObjectType string

// CommitObjectType is the only object type the linter hashes.
const CommitObjectType ObjectType = "commit"

func (ot ObjectType) IsValid() bool {
	switch ot {
	case CommitObjectType:
		return true
	default:
		return false
	}
}

// ComputeHash calculates the SHA-1 object id git assigns to content of the given type.
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("invalid object type: %s - hash not computed", objectType)
	}

	// format: "ObjectType <size>\0<content>"
	header := fmt.Sprintf("%v %d\x00", objectType, len(content))
	data := append([]byte(header), content...)
	hash := sha1.Sum(data)
	return fmt.Sprintf("%x", hash), nil
}
