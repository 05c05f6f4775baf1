// Package google lists Gemini models through the Gemini API (Google AI
// Studio) using the Google GenAI SDK with an API key.
//
// The API routes requests to a region automatically. For region-pinned
// access with Google Cloud credentials use the vertex package, which
// shares [ListModels], [ConvertModel] and [WrapError] with this one.
//
//	client, err := google.New(ctx, os.Getenv("GOOGLE_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records, err := client.ListModels(ctx)
package google
