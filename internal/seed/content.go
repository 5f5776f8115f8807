package seed

import "go_french_gapfill/internal/model"

// Authoring-time shapes. Options are listed in display order; the first
// field of every blank that matters downstream is which single option is
// marked correct.
type optionData struct {
	Text    string
	Correct bool
	Error   string
}

type segmentData struct {
	Type    model.SegmentType
	Content string
	Options []optionData
}

type articleData struct {
	Title       string
	Prompt      string
	Published   bool
	Segments    []segmentData
	Expressions []expressionData
}

type expressionData struct {
	French  string
	English string
}

// canonicalExpressions are the nine key expressions the exercise teaches.
var canonicalExpressions = []expressionData{
	{French: "Tout a basculé lorsque...", English: "Everything changed when..."},
	{French: "... ont eu la frayeur de leur vie", English: "... got the fright of their lives"},
	{French: "Ils ont alors ... mais sans résultat", English: "They then (did) ... but without result"},
	{French: "Aussitôt alertées ... se sont rendues sur les lieux", English: "As soon as (they were) alerted ... went to the scene"},
	{French: "C'est alors qu'un détail a attiré l'attention des enquêteurs:", English: "That's when a detail caught the investigators' attention:"},
	{French: "Mais malgré ... a fini par échouer", English: "But despite ... ended up failing"},
	{French: "Aux alentours de ... a entendu leurs cris à l'aide", English: "In the ballpark of (specific time) ... heard their cry for help"},
	{French: "N'écoutant que son courage ...", English: "Acting solely on courage ..."},
	{French: "En l'espace de minutes chargées d'émotions ...", English: "In the space of a few emotionally charged minutes ..."},
}

// canonicalArticle is the seed exercise: a mountain-rescue news story with
// 15 text segments and 11 blanks. Segment order in this slice is the
// canonical reading order (persisted as contiguous 0-based order values).
var canonicalArticle = articleData{
	Title:     "Mariage en Montagne",
	Prompt:    "Un groupe de 20 couples escaladait une montagne pour se marier ensemble dans le cadre d'une quête.",
	Published: true,
	Segments: []segmentData{
		{Type: model.SegmentText, Content: "Tout a basculé lorsque "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "un des couples s'est perdu sans trace", Correct: true},
			{Text: "un des couples se sont perdus sans trace", Error: "'un des couples' is singular, so use 's'est perdu'"},
			{Text: "un des couples s'est perdue sans trace", Error: "'couples' is masculine, so 'perdu' not 'perdue'"},
			{Text: "un des couples est perdu sans trace", Error: "'se perdre' uses 'être' → 's'est perdu'"},
		}},
		{Type: model.SegmentText, Content: ". La situation, jusque-là sous contrôle, a subitement dégénéré. "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "Leurs camarades", Correct: true},
			{Text: "Leur camarades", Error: "'camarades' is plural, so use 'Leurs' not 'Leur'"},
			{Text: "Leurs camarade", Error: "'Leurs' is plural, so 'camarades' needs an 's'"},
			{Text: "Son camarades", Error: "'camarades' is plural, so use 'Leurs' not 'Son'"},
		}},
		{Type: model.SegmentText, Content: " ont eu la frayeur de leur vie. Ils ont alors "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "commencé leurs recherches", Correct: true},
			{Text: "commencés leurs recherches", Error: "Past participle with 'avoir' doesn't agree with subject here"},
			{Text: "commencé leur recherches", Error: "'recherches' is plural, so use 'leurs' not 'leur'"},
			{Text: "commencer leurs recherches", Error: "After 'ont', use past participle 'commencé' not infinitive"},
		}},
		{Type: model.SegmentText, Content: " mais sans résultat.\n\n"},
		{Type: model.SegmentText, Content: "Aussitôt alertées, "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "les forces de la police et des sapeurs-pompiers", Correct: true},
			{Text: "les forces de la police et des sapeurs-pompier", Error: "'sapeurs-pompiers' needs plural 's' on both words"},
			{Text: "la forces de la police et des sapeurs-pompiers", Error: "'forces' is plural, so use 'les' not 'la'"},
			{Text: "les force de la police et des sapeurs-pompiers", Error: "'les' is plural, so 'forces' needs an 's'"},
		}},
		{Type: model.SegmentText, Content: " se sont rendues sur les lieux. C'est alors qu'un détail a attiré l'attention des enquêteurs: "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "une pièce de leurs vêtements", Correct: true},
			{Text: "une pièce de leur vêtements", Error: "'vêtements' is plural, so use 'leurs' not 'leur'"},
			{Text: "un pièce de leurs vêtements", Error: "'pièce' is feminine, so use 'une' not 'un'"},
			{Text: "une pièce de leurs vêtement", Error: "'leurs' is plural, so 'vêtements' needs an 's'"},
		}},
		{Type: model.SegmentText, Content: ". Mais malgré "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "des heures de recherches", Correct: true},
			{Text: "des heures de recherche", Error: "'heures' is plural, so 'recherches' should also be plural"},
			{Text: "de heures de recherches", Error: "Use 'des' not 'de' before plural noun starting with consonant"},
			{Text: "des heure de recherches", Error: "'des' is plural, so 'heures' needs an 's'"},
		}},
		{Type: model.SegmentText, Content: ", "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "l'enquête", Correct: true},
			{Text: "l'enquêtes", Error: "Elision 'l'' is for singular, so 'enquête' not plural"},
			{Text: "le enquête", Error: "'enquête' is feminine, use 'l'' not 'le' before vowel"},
			{Text: "la enquête", Error: "Use elision 'l'' before vowel, not 'la'"},
		}},
		{Type: model.SegmentText, Content: " a fini par échouer.\n\n"},
		{Type: model.SegmentText, Content: "Aux alentours de "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "16 heures", Correct: true},
			{Text: "16 heure", Error: "Time expression uses plural: '16 heures'"},
			{Text: "seize heure", Error: "'heure' should be plural after number greater than 1"},
			{Text: "16 l'heures", Error: "No article needed with time expressions like '16 heures'"},
		}},
		{Type: model.SegmentText, Content: ", "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "un jeune homme du groupe, Pablo Escobar,", Correct: true},
			{Text: "une jeune homme du groupe, Pablo Escobar,", Error: "'homme' is masculine, so use 'un' not 'une'"},
			{Text: "un jeune hommes du groupe, Pablo Escobar,", Error: "'un' is singular, so 'homme' not 'hommes'"},
			{Text: "un jeune homme de groupe, Pablo Escobar,", Error: "Use 'du groupe' (de + le) not 'de groupe'"},
		}},
		{Type: model.SegmentText, Content: " a entendu leurs cris à l'aide. N'écoutant que son courage, "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "il a suivi la source du son", Correct: true},
			{Text: "il a suivie la source du son", Error: "Past participle with 'avoir': 'suivi' stays invariable here"},
			{Text: "il a suivi le source du son", Error: "'source' is feminine, so use 'la' not 'le'"},
			{Text: "il a suivi la source de son", Error: "Use 'du son' (de + le) not 'de son'"},
		}},
		{Type: model.SegmentText, Content: ". En l'espace de minutes chargées d'émotions, "},
		{Type: model.SegmentBlank, Options: []optionData{
			{Text: "Pablo a retrouvé le couple perdu", Correct: true},
			{Text: "Pablo a retrouvée le couple perdu", Error: "Past participle with 'avoir': 'retrouvé' doesn't agree with subject"},
			{Text: "Pablo a retrouvé la couple perdu", Error: "'couple' is masculine, so use 'le' not 'la'"},
			{Text: "Pablo a retrouvé le couple perdue", Error: "'couple' is masculine, so 'perdu' not 'perdue'"},
		}},
		{Type: model.SegmentText, Content: ".\n\n"},
		{Type: model.SegmentText, Content: "Les couples, finalement rassurés, ont continué leur randonnée et ont réussi leur objectif. « Je croyais qu'on allait mourir », dit Maria, heureuse nouvelle mariée."},
	},
	Expressions: canonicalExpressions,
}
