package i18n

// Supported language codes. Japanese is the default, matching the
// audience the UI was originally built for.
const (
	LangJapanese = "ja"
	LangEnglish  = "en"
)

// DefaultLanguage is used when no explicit language is configured.
const DefaultLanguage = LangJapanese

// Catalog holds every translated string for one language.
type Catalog struct {
	// Name is the language's native display name, shown in the selector.
	Name string
	// Strings maps a string key to its template text. Templates may
	// contain named {slot} placeholders filled by Format.
	Strings map[string]string
	// Examples are ready-made prompts offered below the input box.
	Examples []string
}

var catalogs = map[string]Catalog{
	LangJapanese: {
		Name: "日本語",
		Strings: map[string]string{
			"title": "🤖 OpenManus - AIエージェントシステム",
			"description": `
OpenManusは、複数のツールを使用してさまざまなタスクを解決できる多機能AIエージェントです。
以下にリクエストを入力して、OpenManusに処理を任せましょう！

**機能:**
- 🌐 Webブラウジングと検索
- 💻 コード実行と分析
- 📝 ファイル操作
- 🔧 マルチツール統合
`,
			"config_title": "⚙️ 設定",
			"config_content": "**現在の設定:**\n" +
				"- モデル: `{model}`\n" +
				"- ワークスペース: `{workspace}`\n" +
				"- 最大ステップ数: `20`\n\n" +
				"設定を変更するには、`config/config.toml`を編集してください",
			"chat_label":        "チャット履歴",
			"input_label":       "メッセージ",
			"input_placeholder": "ここにリクエストを入力してください... (例: '最新のAIニュースを検索して')",
			"send_button":       "送信 🚀",
			"clear_button":      "履歴をクリア 🗑️",
			"examples_label":    "💡 サンプルプロンプト",
			"footer": `
---
**注意:** OpenManusは複雑なリクエストの処理に時間がかかる場合があります。
お待ちいただき、同時に複数のリクエストを送信しないでください。

[GitHub](https://github.com/FoundationAgents/OpenManus) |
[ドキュメント](https://github.com/FoundationAgents/OpenManus/blob/main/README_ja.md)
`,
			"processing":         "🤔 リクエストを処理中...",
			"completed":          "✅ タスク完了！\n\n{result}",
			"completed_simple":   "✅ タスクが正常に完了しました！",
			"error":              "❌ エラー: {error}",
			"already_processing": "⚠️ 既にリクエストを処理中です。お待ちください...",
			"language_label":     "言語 / Language",
		},
		Examples: []string{
			"AIエージェントに関する最新ニュースを検索して",
			"フィボナッチ数を生成するPythonスクリプトを作成して",
			"workspace/example.txtのデータを分析して",
			"https://github.com/FoundationAgents/OpenManus を閲覧してプロジェクトを要約して",
			"簡単な電卓をPythonで書いてworkspace/calculator.pyに保存して",
		},
	},
	LangEnglish: {
		Name: "English",
		Strings: map[string]string{
			"title": "🤖 OpenManus - AI Agent System",
			"description": `
OpenManus is a versatile AI agent that can solve various tasks using multiple tools.
Enter your request below and let OpenManus handle it for you!

**Features:**
- 🌐 Web browsing and searching
- 💻 Code execution and analysis
- 📝 File operations
- 🔧 Multi-tool integration
`,
			"config_title": "⚙️ Configuration",
			"config_content": "**Current Settings:**\n" +
				"- Model: `{model}`\n" +
				"- Workspace: `{workspace}`\n" +
				"- Max Steps: `20`\n\n" +
				"To change settings, edit `config/config.toml`",
			"chat_label":        "Chat History",
			"input_label":       "Your Message",
			"input_placeholder": "Enter your request here... (e.g., 'Search for the latest AI news')",
			"send_button":       "Send 🚀",
			"clear_button":      "Clear History 🗑️",
			"examples_label":    "💡 Example Prompts",
			"footer": `
---
**Note:** OpenManus may take some time to process complex requests.
Please be patient and avoid sending multiple requests simultaneously.

[GitHub](https://github.com/FoundationAgents/OpenManus) |
[Documentation](https://github.com/FoundationAgents/OpenManus/blob/main/README.md)
`,
			"processing":         "🤔 Processing your request...",
			"completed":          "✅ Task completed!\n\n{result}",
			"completed_simple":   "✅ Task completed successfully!",
			"error":              "❌ Error: {error}",
			"already_processing": "⚠️ Already processing a request. Please wait...",
			"language_label":     "Language / 言語",
		},
		Examples: []string{
			"Search for the latest news about AI agents",
			"Create a Python script that generates Fibonacci numbers",
			"Analyze the data in workspace/example.txt",
			"Browse https://github.com/FoundationAgents/OpenManus and summarize the project",
			"Write a simple calculator in Python and save it to workspace/calculator.py",
		},
	},
}
