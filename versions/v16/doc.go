// Package v16 collects the standard-library additions of a language release
// rendered as Go helpers: line-oriented reading of standard input, a list
// builder, a duration API with ISO-8601 parsing, regular-expression
// splitting into a lazily consumed sequence, 32-bit rotation and static type
// description.
package v16
