// Package text holds small string helpers built from first-class functions.
package text
