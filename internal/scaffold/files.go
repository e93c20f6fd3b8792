// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scaffold

// Literal file names inside the lab directory.
const (
	RequirementsFile = "requirements.txt"
	ReadmeFile       = "README.md"
)

const requirementsText = `fastapi
uvicorn
requests
ollama
pytest
`

const readmeText = "# Ollama MCP Lab\n" +
	"\n" +
	"Query the Northwind sample database in natural language through Ollama tool calling.\n" +
	"\n" +
	"## Setup\n" +
	"\n" +
	"1. Install dependencies: `pip install -r requirements.txt`\n" +
	"2. Start the local model server: `ollama serve`\n" +
	"3. Run the application: `python app.py`\n" +
	"4. Run the tests: `pytest test.py`\n"

// LiteralFile is a file whose whole content is fixed text.
type LiteralFile struct {
	Name    string
	Content string
}

// Files returns the literal files in write order.
func Files() []LiteralFile {
	return []LiteralFile{
		{Name: RequirementsFile, Content: requirementsText},
		{Name: ReadmeFile, Content: readmeText},
	}
}
