package shared

import (
	uuid "github.com/satori/go.uuid"
)

type StringGenerator struct {
}

func (n *StringGenerator) GenerateUuid() string {
	return uuid.NewV4().String()
}
