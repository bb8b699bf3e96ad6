// Package permission builds permission strings such as read("any").
package permission

import "fmt"

func format(action, role string) string {
	return fmt.Sprintf("%s(%q)", action, role)
}

func Read(role string) string {
	return format("read", role)
}

// Write is shorthand for create, update and delete.
func Write(role string) string {
	return format("write", role)
}

func Create(role string) string {
	return format("create", role)
}

func Update(role string) string {
	return format("update", role)
}

func Delete(role string) string {
	return format("delete", role)
}
