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

// RemoteDependencyData is the payload of an outgoing dependency call.
type RemoteDependencyData struct {
	Ver          int
	Name         string
	ID           string
	ResultCode   string
	Duration     string
	Success      bool
	Data         string
	Target       string
	Type         string
	Properties   map[string]string
	Measurements map[string]float64
}

// NewRemoteDependencyData creates a RemoteDependencyData with the
// current schema version. Success defaults to true per the schema.
func NewRemoteDependencyData() *RemoteDependencyData {
	return &RemoteDependencyData{Ver: 2, Success: true}
}

func (d *RemoteDependencyData) BaseType() string     { return RemoteDependencyBaseType }
func (d *RemoteDependencyData) EnvelopeName() string { return RemoteDependencyEnvelopeName }

func (d *RemoteDependencyData) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"ver":`)
	w.Int64(int64(d.Ver))
	w.RawString(`,"name":`)
	w.String(d.Name)
	// id is a required string; serialized even when empty.
	w.RawString(`,"id":`)
	w.String(d.ID)
	if d.ResultCode != "" {
		w.RawString(`,"resultCode":`)
		w.String(d.ResultCode)
	}
	if d.Duration != "" {
		w.RawString(`,"duration":`)
		w.String(d.Duration)
	}
	w.RawString(`,"success":`)
	w.Bool(d.Success)
	if d.Data != "" {
		w.RawString(`,"data":`)
		w.String(d.Data)
	}
	if d.Target != "" {
		w.RawString(`,"target":`)
		w.String(d.Target)
	}
	if d.Type != "" {
		w.RawString(`,"type":`)
		w.String(d.Type)
	}
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
