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

// Well-known context tag keys accepted by the ingestion endpoint.
const (
	ApplicationVersion       = "ai.application.ver"
	CloudRole                = "ai.cloud.role"
	CloudRoleInstance        = "ai.cloud.roleInstance"
	DeviceID                 = "ai.device.id"
	DeviceLocale             = "ai.device.locale"
	DeviceModel              = "ai.device.model"
	DeviceOSVersion          = "ai.device.osVersion"
	DeviceType               = "ai.device.type"
	InternalNodeName         = "ai.internal.nodeName"
	InternalSDKVersion       = "ai.internal.sdkVersion"
	LocationIP               = "ai.location.ip"
	OperationID              = "ai.operation.id"
	OperationName            = "ai.operation.name"
	OperationParentID        = "ai.operation.parentId"
	OperationSyntheticSource = "ai.operation.syntheticSource"
	SessionID                = "ai.session.id"
	SessionIsFirst           = "ai.session.isFirst"
	UserAccountID            = "ai.user.accountId"
	UserAuthUserID           = "ai.user.authUserId"
	UserID                   = "ai.user.id"
)
