package vision

// BuildVisionPrompt returns the instruction sent alongside the card image.
func BuildVisionPrompt() string {
	return `You are a business card reader. The attached image is a scanned business card.

1. Transcribe ALL visible text verbatim, preserving line breaks, into "transcript".
2. Populate "fields" with the structured contact data.

Return ONLY one valid JSON object matching the provided response schema, no markdown formatting, no code fences, no explanation:

{
  "transcript": "",
  "fields": {
    "companyName": "",
    "contactPerson": "",
    "designation": "",
    "email": "",
    "mobile": "",
    "website": "",
    "address": "",
    "interestedProducts": [],
    "remarks": ""
  }
}

Use empty string for any field not present on the card. Do not invent values.`
}

// responseSchema is the structured-output constraint sent in
// generationConfig, in the Gemini OpenAPI-subset schema form.
func responseSchema() map[string]interface{} {
	str := map[string]interface{}{"type": "STRING"}
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"transcript": str,
			"fields": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"companyName":   str,
					"contactPerson": str,
					"designation":   str,
					"email":         str,
					"mobile":        str,
					"website":       str,
					"address":       str,
					"interestedProducts": map[string]interface{}{
						"type":  "ARRAY",
						"items": str,
					},
					"remarks": str,
				},
			},
		},
		"required": []string{"transcript", "fields"},
	}
}
