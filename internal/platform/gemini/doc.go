// Package gemini implements the generation interface using Google's Gemini API.
package gemini
