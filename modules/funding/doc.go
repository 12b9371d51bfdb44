// Package funding implements the account funding flow: validate the
// payment instrument and amount, then apply the deposit as a single
// storage mutation and return the confirmed receipt.
package funding
