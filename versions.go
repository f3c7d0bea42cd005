// Copyright (C) 2025 yandex-delivery-go contributors
//
// This file is part of yandex-delivery-go.
//
// yandex-delivery-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yandex-delivery-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with yandex-delivery-go.  If not, see <https://www.gnu.org/licenses/>.

// Package ydelivery provides version information for yandex-delivery-go.
package ydelivery

const (
	// Version is the current version of yandex-delivery-go
	Version = "1.0.0"

	// APIVersion is the delivery API version this library speaks.
	// It becomes the second path segment of every request URL.
	APIVersion = "1.0"

	// DefaultBaseURL is the production endpoint of the delivery API.
	// Original API description: http://docs.yandexdelivery.apiary.io/
	DefaultBaseURL = "https://delivery.yandex.ru/api"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion string
	APIVersion     string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion: Version,
		APIVersion:     APIVersion,
	}
}
