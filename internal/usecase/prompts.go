package usecase

import "fmt"

// Prompt templates for the three generative flows. These are contracts with
// the model: the JSON schemas and scoring rules below are enforced by the
// model, not recomputed server-side.

// tryOnIntro tells the image model how to read the interleaved uploads:
// first image is the subject, the rest are clothing sources.
const tryOnIntro = `Important: The first uploaded image is the person (subject). Any additional uploaded images are outfit images that should be used as clothing sources. ` +
	`Transfer clothing and details from the outfit images onto the subject in a realistic way. Preserve the subject's pose and scene lighting. ` +
	`Do NOT add or remove body parts or extra people. ALWAYS MODIFY THE PERSON OUTFIT TO THE UPLOADED CLOTHES. If an outfit image depicts a dress, do NOT add pants or lower-body garments. ` +
	`For outerwear or hoodies, transfer top-layer details (hood, collar, texture) but do not obscure the face or change identity. ` +
	`Avoid compositing seams, text, watermarks, or UI. Frame the subject centrally (occupying ~60-80% of image height). Return a single PNG image only.`

// viewInstruction adds the per-view framing constraint
func viewInstruction(view string) string {
	switch view {
	case "Back View":
		return `Render the subject from directly behind, showing the back of the outfit. Keep the same person, body proportions, hairstyle, and scene lighting as the subject image. Do not invent tattoos, logos, or text on the back.`
	default:
		return `Render the subject facing the camera directly, full outfit visible from the front. Keep the subject's pose natural and the face unchanged.`
	}
}

// subjectLabel precedes the first uploaded image
const subjectLabel = "Subject image (person) — do not change identity or face."

// outfitLabel precedes each additional uploaded image
func outfitLabel(index int) string {
	return fmt.Sprintf("Outfit image %d — clothing source. Use these garments to dress the subject (do not add extra people).", index)
}

// feedbackPrompt asks for a vibe-forward critique as one JSON object.
// No example JSON is included so the model cannot echo it back.
func feedbackPrompt(style string) string {
	return fmt.Sprintf(`You are a professional fashion stylist and aesthetic analyst.
Evaluate how well the uploaded outfit expresses the target vibe: "%s".

Return ONE valid JSON object only (no commentary, no markdown).
Schema:
{
  "overall_score": number (0-1, two decimals),
  "components": {
    "fit": number (0-1),
    "color": number (0-1),
    "proportions": number (0-1),
    "cohesion": number (0-1),
    "vibe_match": number (0-1)
  },
  "weights": { "fit": number, "color": number, "proportions": number, "cohesion": number, "vibe_match": number },
  "vibe": string (<= 2 sentences),
  "tips": [ { "label": string, "text": string, "score": number (0-1, optional) } ],
  "action_plan": [ { "recommendation": string, "impact_estimate": number (0-1) } ],
  "tags": [ string ]
}

Weights (sum to 1, vibe-forward):
- vibe_match = 0.55
- fit = 0.15
- color = 0.10
- proportions = 0.10
- cohesion = 0.10

Scoring guidance (two-decimal precision):
- IMPORTANT: Look through all the details of the person: Shoes, Accessories, Shirts, Pants, Outerwear, Bags, Jewelry, Hats.
- Compute overall_score = weighted sum of components.
- Judge fit/color/proportions/cohesion ONLY in relation to how well they support the target vibe.
- Penalize elements that clearly contradict the vibe (e.g., sneakers with formal tux).
  If major elements oppose the vibe, set vibe_match <= 0.25 and cap overall_score <= 0.55.
- Keep feedback specific and actionable (2-4 tips, up to 3 action_plan items).
- Do not mention faces, identity, or background. Focus strictly on clothing, silhouette, layering, and color relationships.`, style)
}

// recommendationPrompt asks for 4 outfit items matching the vibe as one
// JSON object
func recommendationPrompt(vibe string) string {
	return fmt.Sprintf(`You are a professional fashion stylist and personal shopper.
Analyze the uploaded image of a person and recommend 4 complete outfit items that match their style and the target vibe: "%[1]s".

IMPORTANT! Match the vibe: "%[1]s"
Return ONE valid JSON object only (no commentary, no markdown).
Schema:
{
  "recommendations": [
    {
      "id": number (1-4),
      "name": string (outfit item name, e.g., "Classic White Button-Down Shirt"),
      "category": string (one of: "shirt", "pants", "dress", "shoes", "outerwear", "accessory"),
      "style": string (short style description, e.g., "Professional chic"),
      "price": string (estimated price with currency, e.g., "$89"),
      "matchScore": number (85-98, how well it matches the person and vibe),
      "searchQuery": string (Google Shopping search query, e.g., "white button down shirt women professional"),
      "description": string (1-2 sentences about why this item works for them)
    }
  ]
}

Requirements:
- Recommend a diverse mix: at least one top (shirt/dress/outerwear), one bottom (pants) or full outfit (dress), and one pair of shoes or accessory.
- Base recommendations on the person's apparent style, body type, and color preferences visible in the image.
- Match the target vibe "%[1]s" (e.g., formal = blazers, dress pants; casual = denim, tees; streetwear = hoodies, sneakers).
- Provide realistic price estimates (range $50-$300 per item).
- Make searchQuery specific enough for Google Shopping (include gender, style, color if relevant).
- Ensure matchScore reflects how well the item suits both the person and the vibe (higher scores for better matches).`, vibe)
}
