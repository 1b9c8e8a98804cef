// Package llm provides a narrow text-completion interface over hosted language
// models and an AI-assisted transaction classifier built on top of it.
// Supported providers are Anthropic (the default) and OpenAI.
package llm
