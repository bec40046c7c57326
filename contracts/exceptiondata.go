// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package contracts

import "go.elastic.co/fastjson"

// StackFrame is a single frame of a parsed stack trace.
type StackFrame struct {
	Level    int
	Method   string
	Assembly string
	FileName string
	Line     int
}

func (f *StackFrame) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"level":`)
	w.Int64(int64(f.Level))
	w.RawString(`,"method":`)
	w.String(f.Method)
	if f.Assembly != "" {
		w.RawString(`,"assembly":`)
		w.String(f.Assembly)
	}
	if f.FileName != "" {
		w.RawString(`,"fileName":`)
		w.String(f.FileName)
	}
	if f.Line != 0 {
		w.RawString(`,"line":`)
		w.Int64(int64(f.Line))
	}
	w.RawByte('}')
	return nil
}

// ExceptionDetails describes one exception in a (possibly chained)
// exception payload.
type ExceptionDetails struct {
	ID           int
	OuterID      int
	TypeName     string
	Message      string
	HasFullStack bool
	Stack        string
	ParsedStack  []*StackFrame
}

func (d *ExceptionDetails) MarshalFastJSON(w *fastjson.Writer) error {
	var firstErr error
	w.RawByte('{')
	if d.ID != 0 {
		w.RawString(`"id":`)
		w.Int64(int64(d.ID))
		w.RawByte(',')
	}
	if d.OuterID != 0 {
		w.RawString(`"outerId":`)
		w.Int64(int64(d.OuterID))
		w.RawByte(',')
	}
	w.RawString(`"typeName":`)
	w.String(d.TypeName)
	w.RawString(`,"message":`)
	w.String(d.Message)
	w.RawString(`,"hasFullStack":`)
	w.Bool(d.HasFullStack)
	if d.Stack != "" {
		w.RawString(`,"stack":`)
		w.String(d.Stack)
	}
	if len(d.ParsedStack) > 0 {
		w.RawString(`,"parsedStack":[`)
		for i, f := range d.ParsedStack {
			if i > 0 {
				w.RawByte(',')
			}
			if err := f.MarshalFastJSON(w); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		w.RawByte(']')
	}
	w.RawByte('}')
	return firstErr
}

// ExceptionData is the payload of a tracked exception.
type ExceptionData struct {
	Ver           int
	Exceptions    []*ExceptionDetails
	SeverityLevel SeverityLevel
	Properties    map[string]string
	Measurements  map[string]float64
}

// NewExceptionData creates an ExceptionData with the current schema version.
func NewExceptionData() *ExceptionData {
	return &ExceptionData{Ver: 2}
}

func (d *ExceptionData) BaseType() string     { return ExceptionBaseType }
func (d *ExceptionData) EnvelopeName() string { return ExceptionEnvelopeName }

func (d *ExceptionData) MarshalFastJSON(w *fastjson.Writer) error {
	var firstErr error
	w.RawString(`{"ver":`)
	w.Int64(int64(d.Ver))
	w.RawString(`,"exceptions":[`)
	for i, e := range d.Exceptions {
		if i > 0 {
			w.RawByte(',')
		}
		if err := e.MarshalFastJSON(w); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.RawByte(']')
	w.RawString(`,"severityLevel":`)
	w.Int64(int64(d.SeverityLevel))
	if len(d.Properties) > 0 {
		w.RawString(`,"properties":`)
		writeStringMap(w, d.Properties)
	}
	if len(d.Measurements) > 0 {
		w.RawString(`,"measurements":`)
		writeFloatMap(w, d.Measurements)
	}
	w.RawByte('}')
	return firstErr
}
