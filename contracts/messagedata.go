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

// SeverityLevel is the wire encoding of a trace or exception severity.
type SeverityLevel int

const (
	Verbose SeverityLevel = iota
	Information
	Warning
	Error
	Critical
)

// MessageData is the payload of a trace message.
type MessageData struct {
	Ver           int
	Message       string
	SeverityLevel SeverityLevel
	Properties    map[string]string
	Measurements  map[string]float64
}

// NewMessageData creates a MessageData with the current schema version.
func NewMessageData() *MessageData {
	return &MessageData{Ver: 2}
}

func (d *MessageData) BaseType() string     { return MessageBaseType }
func (d *MessageData) EnvelopeName() string { return MessageEnvelopeName }

func (d *MessageData) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"ver":`)
	w.Int64(int64(d.Ver))
	w.RawString(`,"message":`)
	w.String(d.Message)
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
	return nil
}
