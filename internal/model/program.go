package model

import "fmt"

// Program — учебная программа студента (фиксированное перечисление).
type Program string

const (
	ProgramWI  Program = "WI"
	ProgramIIB Program = "IIB"
	ProgramET  Program = "ET"
	ProgramMB  Program = "MB"
)

// Programs перечисляет допустимые значения в стабильном порядке.
var Programs = []Program{ProgramWI, ProgramIIB, ProgramET, ProgramMB}

// Valid сообщает, входит ли значение в перечисление.
func (p Program) Valid() bool {
	switch p {
	case ProgramWI, ProgramIIB, ProgramET, ProgramMB:
		return true
	}
	return false
}

// ParseProgram проверяет строку и возвращает Program.
func ParseProgram(s string) (Program, error) {
	p := Program(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid program %q", s)
	}
	return p, nil
}
