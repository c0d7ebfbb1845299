package parser

import (
	"accesslogstats/internal/entity"
	"io"
)

type Parser interface {
	ParseEntries(data io.Reader) ([]*entity.LogRow, error)
}
