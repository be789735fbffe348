// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenPair is the credential pair issued by the remote service. The refresh
// token is rotated on every refresh, so a used refresh token becomes invalid.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Empty reports whether the pair carries no access token.
func (t TokenPair) Empty() bool {
	return t.AccessToken == ""
}
