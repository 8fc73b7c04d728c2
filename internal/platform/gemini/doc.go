// Package gemini implements the generation text-model interfaces using
// Google's Gemini API.
package gemini
