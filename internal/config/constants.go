package config

import "strings"

const (
	ProgName = "badlam"
	Version  = "0.5.0"
)

const SourceFileExt = ".lam"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".lam", ".badlam"}

// WantFileExt holds the expected output of a source file for `badlam test`
const WantFileExt = ".want"

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "badlam.yaml"

// ConfigEnvVar overrides the config file location.
const ConfigEnvVar = "BADLAM_CONFIG"

// DefaultContextSpan is the number of characters shown around an error position.
const DefaultContextSpan = 40

// Member names with special meaning in the object model
const (
	InitMethodName = "__init__"
	DumpMethodName = "__dump__"
	MessageMember  = "msg"
	PositionMember = "__pos__" // debug field holding the failing position
	ThisName       = "this"    // receiver binding inside bound user functions
	LambdaName     = "λ"       // display name of anonymous functions
)

// Built-in class names
const (
	ObjectClassName         = "Object"
	ExceptionClassName      = "Exception"
	NotImplementedClassName = "NotImplemented"
	AttrNotFoundClassName   = "AttrNotFound"
	VarNotFoundClassName    = "VarNotFound"
	IncorrectTypeClassName  = "IncorrectType"
)

// Built-in function names
const (
	NullName  = "null"
	TrueName  = "true"
	FalseName = "false"
	DumpName  = "dump"
	NewName   = "new"
)

func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func TrimSourceExt(path string) string {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext)
		}
	}
	return path
}
