// Package openai lists models through the OpenAI API.
//
// The client also serves OpenAI-compatible vendors: point it at another
// base URL with [WithBaseURL] and attribute its errors with [WithProvider].
//
// Fine-tuned models (ids starting with "ft:") are hidden unless
// [WithFineTuned] is set.
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
//	records, err := client.ListModels(ctx)
package openai
