// Package vertex lists Gemini models through Google Cloud Vertex AI.
//
// Vertex AI uses Google Cloud authentication (Application Default
// Credentials) instead of API keys, and every request is pinned to a
// region: the client targets https://{region}-aiplatform.googleapis.com/.
//
// # Authentication
//
// Application Default Credentials are discovered in the following order:
//
//  1. GOOGLE_APPLICATION_CREDENTIALS environment variable (path to service account key)
//  2. gcloud CLI credentials (gcloud auth application-default login)
//  3. Attached service account (GKE Workload Identity, Compute Engine, Cloud Run)
//
// # Usage
//
//	client, err := vertex.New(ctx, "my-project", "us-central1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records, err := client.ListModels(ctx)
//
// # Available Regions
//
// Common Vertex AI regions include: us-central1, us-east4, us-west1,
// europe-west1, europe-west4, asia-northeast1, asia-southeast1.
// See https://cloud.google.com/vertex-ai/docs/general/locations for full list.
package vertex
