// Copyright (C) 2026 Ioannis Torakis <john.torakis@gmail.com>
// SPDX-License-Identifier: Elastic-2.0
//
// Licensed under the Elastic License 2.0.
// You may obtain a copy of the license at:
// https://www.elastic.co/licensing/elastic-license
//
// Use, modification, and redistribution permitted under the terms of the license,
// except for providing this software as a commercial service or product.

package catalog

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Built-in option catalogs. Both can be overridden from catalog.hcl in the
// config directory so teams can extend them without a rebuild.
var (
	defaultAccessTypes = []string{"GitHub", "Grafana", "AWS", "Confluence", "Figma", "JFROG"}
	defaultUserTypes   = []string{"PM", "UX", "QA", "Scrum Master", "Developer", "BA", "DevOps"}
)

// Catalog holds the fixed option sets offered by the access-request form.
type Catalog struct {
	AccessTypes []string
	UserTypes   []string
}

// Wrap in a struct for hclsimple
type catalogFile struct {
	AccessTypes []string `hcl:"access_types,optional"`
	UserTypes   []string `hcl:"user_types,optional"`
}

// Default returns the built-in catalogs.
func Default() *Catalog {
	return &Catalog{
		AccessTypes: append([]string(nil), defaultAccessTypes...),
		UserTypes:   append([]string(nil), defaultUserTypes...),
	}
}

// Load reads catalog overrides from the given HCL file. A missing file means
// the built-in defaults; a present but unparsable file is an error.
func Load(path string) (*Catalog, error) {
	cat := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cat, nil
	}

	var file catalogFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if len(file.AccessTypes) > 0 {
		cat.AccessTypes = file.AccessTypes
	}
	if len(file.UserTypes) > 0 {
		cat.UserTypes = file.UserTypes
	}

	return cat, nil
}

// HasAccessType reports whether the label is part of the access-type catalog.
func (c *Catalog) HasAccessType(label string) bool {
	return contains(c.AccessTypes, label)
}

// HasUserType reports whether the label is part of the user-type catalog.
func (c *Catalog) HasUserType(label string) bool {
	return contains(c.UserTypes, label)
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
