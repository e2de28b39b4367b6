// Package where builds depot, workspace and filesystem path mappings from p4 -G where output.
package where

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nellielemonier/perforce-plugin/perforce/marshal"
	"github.com/nellielemonier/perforce-plugin/perforce/pkg/logger"
)

const (
	keyCode       = "code"
	keyData       = "data"
	keyDepotFile  = "depotFile"
	keyClientFile = "clientFile"
	keyPath       = "path"

	codeError = "error"

	notInClientView = "not in client view"
)

// WhereMapping is the depot, workspace and local filesystem path of one file.
// Fields missing from the p4 record are empty.
type WhereMapping struct {
	depot      string
	workspace  string
	filesystem string
}

func NewWhereMapping(depot, workspace, filesystem string) WhereMapping {
	return WhereMapping{depot: depot, workspace: workspace, filesystem: filesystem}
}

func (m WhereMapping) DepotPath() string {
	return m.depot
}

func (m WhereMapping) WorkspacePath() string {
	return m.workspace
}

func (m WhereMapping) FilesystemPath() string {
	return m.filesystem
}

func (m WhereMapping) String() string {
	return fmt.Sprintf("where[depot=%v,workspace=%v,filesystem=%v]", m.depot, m.workspace, m.filesystem)
}

// ParseError is returned when the output could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "could not parse where map: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ServerError is returned when p4 reported an error other than the path being outside the client view.
type ServerError struct {
	Data string
}

func (e *ServerError) Error() string {
	return "p4 where parsing error: " + e.Data
}

// Parser turns p4 -G where output into mappings.
type Parser struct {
	// Logger receives p4 error records at debug level. Optional.
	Logger logger.Logger
}

// Parse decodes the first record in b using a parser without logging.
func Parse(b []byte) (WhereMapping, error) {
	p := Parser{}
	return p.Parse(b)
}

// Parse decodes the first record in b.
func (s Parser) Parse(b []byte) (res WhereMapping, _ error) {
	dict, err := marshal.Decode(b)
	if err != nil {
		return res, &ParseError{Err: err}
	}
	return s.mapping(dict)
}

// ParseAll decodes every record in b, one per path passed to p4 where.
// Stops at the first decode or server error, returning mappings built so far.
func (s Parser) ParseAll(b []byte) (res []WhereMapping, _ error) {
	r := marshal.NewReader(b)
	for {
		dict, err := r.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, &ParseError{Err: err}
		}
		m, err := s.mapping(dict)
		if err != nil {
			return res, err
		}
		res = append(res, m)
	}
}

func (s Parser) mapping(dict marshal.Dict) (res WhereMapping, _ error) {
	if dict[keyCode] == codeError {
		data, hasData := dict[keyData]
		s.logger().Debug("p4 where parsing error", "data", data)
		// an error without data or for a path outside the client view is not fatal
		if hasData && !strings.Contains(data, notInClientView) {
			return res, &ServerError{Data: data}
		}
	}
	return NewWhereMapping(dict[keyDepotFile], dict[keyClientFile], dict[keyPath]), nil
}

func (s Parser) logger() logger.Logger {
	if s.Logger == nil {
		return logger.NewNoopLogger()
	}
	return s.Logger
}
