// Package marshal decodes the marshalled dictionaries written by the p4 client when run with the -G flag. Only flat dictionaries with string and 32-bit integer values are supported, anything else is a decode error. Use Decode for a single record and Reader when the command wrote one record per argument.
package marshal
