package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// Field constraints shared by the registration, trip and catch payloads.
// These are pure predicates with no side effects; handlers call them before
// touching persistence.
var (
	usernameRegex      = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	emailRegex         = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	bodyOfWaterRegex   = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
	lettersSpacesRegex = regexp.MustCompile(`^[a-zA-Z ]+$`)
)

// passwordSymbols is the set of special characters a password must draw from.
const passwordSymbols = "-!@#$%&*()_+=|<>?{}[]~"

// IsUsernameValid reports whether the username is non-blank, alphanumeric
// and at most 50 characters.
func IsUsernameValid(username string) bool {
	if strings.TrimSpace(username) == "" {
		return false
	}

	if len(username) > 50 {
		return false
	}

	return usernameRegex.MatchString(username)
}

// IsPasswordValid reports whether the password is 6-64 characters and
// contains at least one letter, one digit and one symbol from the allowed set.
func IsPasswordValid(password string) bool {
	if strings.TrimSpace(password) == "" {
		return false
	}

	if len(password) < 6 || len(password) > 64 {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool

	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	return hasLetter && hasDigit && hasSymbol
}

// IsEmailValid reports whether the email is non-blank, at most 100 characters
// and shaped like local@domain.tld. Not a full RFC 5322 check.
func IsEmailValid(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}

	if len(email) > 100 {
		return false
	}

	return emailRegex.MatchString(email)
}

// IsBodyOfWaterValid reports whether the body of water is non-blank,
// alphanumeric plus spaces and 1-100 characters.
func IsBodyOfWaterValid(bodyOfWater string) bool {
	if strings.TrimSpace(bodyOfWater) == "" {
		return false
	}

	if len(bodyOfWater) > 100 {
		return false
	}

	return bodyOfWaterRegex.MatchString(bodyOfWater)
}

// IsSpeciesValid reports whether the species is non-empty, letters and
// spaces only and at most 50 characters.
func IsSpeciesValid(species string) bool {
	return isLettersAndSpaces(species, 50)
}

// IsLureOrBaitValid reports whether the lure or bait is non-empty, letters
// and spaces only and at most 50 characters.
func IsLureOrBaitValid(lureOrBait string) bool {
	return isLettersAndSpaces(lureOrBait, 50)
}

// IsWeatherConditionValid reports whether the condition label is non-empty,
// letters and spaces only and at most 25 characters.
func IsWeatherConditionValid(weatherCondition string) bool {
	return isLettersAndSpaces(weatherCondition, 25)
}

// IsLatitudeValid reports whether the latitude is within [-90, 90].
func IsLatitudeValid(latitude float64) bool {
	return latitude >= -90 && latitude <= 90
}

// IsLongitudeValid reports whether the longitude is within [-180, 180].
func IsLongitudeValid(longitude float64) bool {
	return longitude >= -180 && longitude <= 180
}

// AreCoordinatesValid reports whether latitude is within [-90, 90] and
// longitude within [-180, 180].
func AreCoordinatesValid(latitude, longitude float64) bool {
	return IsLatitudeValid(latitude) && IsLongitudeValid(longitude)
}

// IsAirTemperatureValid reports whether the temperature is within [-50, 150].
func IsAirTemperatureValid(airTemperature int) bool {
	return airTemperature >= -50 && airTemperature <= 150
}

// IsWaterTemperatureValid reports whether the temperature is within [-50, 150].
func IsWaterTemperatureValid(waterTemperature int) bool {
	return waterTemperature >= -50 && waterTemperature <= 150
}

// IsWindSpeedValid reports whether the wind speed is within [0, 100].
func IsWindSpeedValid(windSpeed int) bool {
	return windSpeed >= 0 && windSpeed <= 100
}

func isLettersAndSpaces(s string, maxLen int) bool {
	if s == "" {
		return false
	}

	if len(s) > maxLen {
		return false
	}

	return lettersSpacesRegex.MatchString(s)
}
