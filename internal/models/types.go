package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The remote store is schemaless from our point of view: numeric columns
// occasionally arrive as quoted strings and booleans as "true"/"false". The
// Flex types absorb that at the decode boundary. FlexID is strict (a
// non-numeric id fails the row), FlexFloat and FlexBool degrade to their
// zero value.

type FlexID int64

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("id %q is not numeric", s)
		}
		*f = FlexID(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		var fl float64
		if err2 := json.Unmarshal(b, &fl); err2 != nil {
			return err
		}
		n = int64(fl)
	}
	*f = FlexID(n)
	return nil
}

func (f FlexID) Int64() int64 { return int64(f) }

func (f FlexID) String() string { return strconv.FormatInt(int64(f), 10) }

type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = 0
	if len(b) == 0 || string(b) == "null" {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexFloat(v)
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*f = FlexFloat(v)
	}
	return nil
}

func (f FlexFloat) Float64() float64 { return float64(f) }

type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = false
	if len(b) == 0 || string(b) == "null" {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			*f = FlexBool(v)
		}
		return nil
	}

	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = FlexBool(v)
	}
	return nil
}

func (f FlexBool) Bool() bool { return bool(f) }
