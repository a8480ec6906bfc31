package constvars

const (
	RegexAuthCommand = `(?i)#auth\s+(\d{8})(?:\D|$)`
)
