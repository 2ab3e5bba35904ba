// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package components is the built-in component catalog. Each component
// kind pairs a value type (Radius, Color, ...) with a descriptor tagging
// its storage layout with a stable logical name of the form
// "rerun.components.<Name>".
//
// Importing the package registers every descriptor in the rerun catalog
// and with Arrow's extension-type registry. One descriptor instance
// exists per kind; every batch of that kind shares it by reference.
package components

import "github.com/yutiansut/rerun"

var (
	radiusType           = rerun.MustRegisterComponentType(NewRadiusType())
	scalarScatteringType = rerun.MustRegisterComponentType(NewScalarScatteringType())
	drawOrderType        = rerun.MustRegisterComponentType(NewDrawOrderType())
	colorType            = rerun.MustRegisterComponentType(NewColorType())
	labelType            = rerun.MustRegisterComponentType(NewLabelType())
	instanceKeyType      = rerun.MustRegisterComponentType(NewInstanceKeyType())
	position2DType       = rerun.MustRegisterComponentType(NewPosition2DType())
)
