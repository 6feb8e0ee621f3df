// Package i18n holds the locale string tables. Adding a locale means adding a
// table entry; nothing else in the codebase branches on language codes.
package i18n

import (
	"sort"

	"github.com/Rrens/weather-advisor/internal/domain"
)

// Locale bundles everything language-specific: the client-facing string table,
// example prompts and the templates the orchestrator builds prompts from.
type Locale struct {
	Translations map[string]string
	Examples     []string

	// SystemPrompt establishes the advisor role and authorizes weather tool
	// calls for locations named in the user's text.
	SystemPrompt string

	// QueryPrompt formats (weather context, user query) for the initial round.
	QueryPrompt string

	// FallbackPrompt formats (weather context, user query) after the
	// extractor fallback rebuilt the conversation; it drops the tool hint.
	FallbackPrompt string

	// DailyPrompt formats (weather context) when there is no user query.
	DailyPrompt string
}

var locales = map[string]*Locale{
	"en": {
		Translations: map[string]string{
			"title":                "🌤️ Weather Activity Advisor",
			"subtitle":             "Get personalized activity suggestions based on real-time weather",
			"location_input":       "Enter your location (city name)",
			"location_placeholder": "e.g., Tokyo, New York, London",
			"get_weather":          "Get Weather & Suggestions",
			"voice_input":          "🎤 Voice Input",
			"chat_input":           "Ask me anything about activities, fashion, or plans...",
			"example_prompts":      "Example Prompts:",
			"weather_info":         "Current Weather Information",
			"suggestions":          "AI Suggestions",
			"chat_history":         "Chat History",
			"clear_chat":           "Clear Chat",
			"error":                "Error",
			"weather_fetch_error":  "Could not fetch weather data. Please check the location.",
			"language":             "Language",
		},
		Examples: []string{
			"What should I wear today?",
			"Best time to go outside?",
			"Indoor activities for this weather?",
			"Recommended sports for this weather?",
		},
		SystemPrompt: `You are a helpful weather advisor. Based on current weather conditions, you provide suggestions for activities, outings, fashion, music, sports, and more.
Make your suggestions specific, practical, and appropriate for the weather conditions.

Important notes:
- If the user mentions a location (city name) in their query, automatically use the get_weather tool to fetch weather for that location.
- Even if there's existing weather data in the session, if the user asks about a different location, fetch weather for that location.
- Example: If asked "What should I do today in Tokyo?", fetch weather for Tokyo.`,
		QueryPrompt:    "%s\n\nUser query: %s\n\nProvide detailed suggestions considering the weather above. If the query mentions a location, fetch weather for that location.",
		FallbackPrompt: "%s\n\nUser query: %s\n\nProvide detailed suggestions considering the weather above.",
		DailyPrompt:    "%s\n\nBased on this weather, suggest activities, outfit ideas, and outing recommendations for today.",
	},
	"ja": {
		Translations: map[string]string{
			"title":                "🌤️ 天気アクティビティアドバイザー",
			"subtitle":             "リアルタイムの天気に基づいてパーソナライズされたアクティビティ提案を取得",
			"location_input":       "場所を入力してください（都市名）",
			"location_placeholder": "例：東京、大阪、札幌",
			"get_weather":          "天気と提案を取得",
			"voice_input":          "🎤 音声入力",
			"chat_input":           "アクティビティ、ファッション、プランについて何でも聞いてください...",
			"example_prompts":      "例のプロンプト：",
			"weather_info":         "現在の気象情報",
			"suggestions":          "AI提案",
			"chat_history":         "チャット履歴",
			"clear_chat":           "チャットをクリア",
			"error":                "エラー",
			"weather_fetch_error":  "天気データを取得できませんでした。場所を確認してください。",
			"language":             "言語",
		},
		Examples: []string{
			"今日は何を着ればいいですか？",
			"外出するのに良い時間は？",
			"雨が降るので、室内でできることは？",
			"この天気でおすすめのスポーツは？",
		},
		SystemPrompt: `あなたは親切な天気アドバイザーです。現在の天気に基づいて、アクティビティ、外出、ファッション、音楽、スポーツなどの提案を提供します。
提案は具体的で、実用的で、天気条件に適切なものにしてください。

重要な注意事項：
- ユーザーが質問の中で場所（都市名）を言及した場合、その場所の天気を自動的に取得するためにget_weatherツールを使用してください。
- セッションに既存の天気データがあっても、ユーザーが別の場所について尋ねている場合は、その場所の天気を取得してください。
- 例：「東京で今日何をすべきか？」と聞かれたら、東京の天気を取得してください。`,
		QueryPrompt:    "%s\n\nユーザーの質問: %s\n\n上記の天気を考慮して、詳細な提案を提供してください。質問に場所が含まれている場合は、その場所の天気を取得してください。",
		FallbackPrompt: "%s\n\nユーザーの質問: %s\n\n上記の天気を考慮して、詳細な提案を提供してください。",
		DailyPrompt:    "%s\n\nこの天気に基づいて、今日のアクティビティ、服装、外出のアイデアを提案してください。",
	},
}

// Get returns the locale for a language code.
func Get(language string) (*Locale, error) {
	loc, ok := locales[language]
	if !ok {
		return nil, &domain.UnsupportedLanguageError{Language: language}
	}
	return loc, nil
}

// ForPrompt returns the locale used for prompt construction, falling back to
// English for unknown codes so the orchestrator always has templates to work
// with.
func ForPrompt(language string) *Locale {
	if loc, ok := locales[language]; ok {
		return loc
	}
	return locales["en"]
}

// Translations returns the client-facing string table for a language.
func Translations(language string) (map[string]string, error) {
	loc, err := Get(language)
	if err != nil {
		return nil, err
	}
	return loc.Translations, nil
}

// Examples returns the example prompt list for a language.
func Examples(language string) ([]string, error) {
	loc, err := Get(language)
	if err != nil {
		return nil, err
	}
	return loc.Examples, nil
}

// Supported lists the available language codes.
func Supported() []string {
	codes := make([]string, 0, len(locales))
	for code := range locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
