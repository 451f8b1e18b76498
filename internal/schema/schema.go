// Package schema provides the principal schematics for all other packages. It
// defines the operating system provider implementations that the probing and
// command layers consume through their own narrow interfaces, so that every
// system call remains mockable in tests.
package schema
