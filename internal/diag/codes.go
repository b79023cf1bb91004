package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Конфигурационный файл
	CfgInfo            Code = 1000
	CfgFileCreated     Code = 1001
	CfgWrongFieldCount Code = 1002
	CfgBadIndex        Code = 1003
	CfgNegativeIndex   Code = 1004
	CfgCreateFailed    Code = 1005

	// Определения полей
	FieldInfo       Code = 2000
	FieldIndexOrder Code = 2001
)

var codeDescription = map[Code]string{
	UnknownCode:        "unknown diagnostic",
	CfgInfo:            "configuration note",
	CfgFileCreated:     "configuration file was missing and has been created with defaults",
	CfgWrongFieldCount: "configuration line does not have exactly three comma-separated values",
	CfgBadIndex:        "configuration index is not an integer",
	CfgNegativeIndex:   "configuration index is negative",
	CfgCreateFailed:    "configuration file could not be created",
	FieldInfo:          "field note",
	FieldIndexOrder:    "lower and upper indexes were inverted and have been swapped",
}

// ID возвращает стабильный машинный идентификатор кода.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("FLD%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
