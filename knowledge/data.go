package knowledge

// Built-in knowledge tables. Declared order is the iteration order the
// scorer sees, so keep related entries grouped rather than sorted.

var defaultSnippets = []Snippet{
	{
		ID:   "fastapi",
		Name: "FastAPI Starter",
		Tags: []string{"python", "fastapi", "api", "backend"},
		Code: `from fastapi import FastAPI

app = FastAPI()

@app.get("/")
def read_root():
    return {"status": "ok"}

@app.get("/items/{item_id}")
def read_item(item_id: int, q: str | None = None):
    return {"item_id": item_id, "q": q}

# run: uvicorn main:app --reload
`,
	},
	{
		ID:   "flask-upload",
		Name: "Python File Upload (Flask)",
		Tags: []string{"python", "flask", "upload", "file-upload"},
		Code: `import os
from flask import Flask, request

app = Flask(__name__)
UPLOAD_DIR = "uploads"
os.makedirs(UPLOAD_DIR, exist_ok=True)

@app.post("/upload")
def upload():
    file = request.files["file"]
    if not file.filename:
        return {"error": "empty filename"}, 400
    file.save(os.path.join(UPLOAD_DIR, file.filename))
    return {"uploaded": file.filename}
`,
	},
	{
		ID:   "express",
		Name: "Express Starter",
		Tags: []string{"javascript", "nodejs", "express", "api", "backend"},
		Code: `const express = require("express")
const app = express()

app.use(express.json())

app.get("/", (req, res) => {
  res.json({ status: "ok" })
})

app.listen(3000, () => console.log("listening on :3000"))
`,
	},
	{
		ID:   "express-upload",
		Name: "Express File Upload (Multer)",
		Tags: []string{"javascript", "nodejs", "express", "upload", "file-upload", "multer"},
		Code: `const express = require("express")
const multer = require("multer")

const upload = multer({ dest: "uploads/" })
const app = express()

app.post("/upload", upload.single("file"), (req, res) => {
  res.json({ uploaded: req.file.originalname, size: req.file.size })
})

app.listen(3000)
`,
	},
	{
		ID:   "react",
		Name: "React Component",
		Tags: []string{"javascript", "react", "frontend", "component"},
		Code: `import { useState, useEffect } from "react"

export default function ItemList() {
  const [items, setItems] = useState([])
  const [loading, setLoading] = useState(true)

  useEffect(() => {
    fetch("/api/items")
      .then(res => res.json())
      .then(data => setItems(data))
      .finally(() => setLoading(false))
  }, [])

  if (loading) return <p>Loading...</p>
  return (
    <ul>
      {items.map(item => <li key={item.id}>{item.name}</li>)}
    </ul>
  )
}
`,
	},
	{
		ID:   "jwt-auth",
		Name: "JWT Authentication",
		Tags: []string{"jwt", "auth", "security", "nodejs"},
		Code: `const jwt = require("jsonwebtoken")

const SECRET = process.env.JWT_SECRET || "dev-secret"

function sign(user) {
  return jwt.sign({ sub: user.id, name: user.name }, SECRET, { expiresIn: "12h" })
}

function authMiddleware(req, res, next) {
  const header = req.headers.authorization || ""
  const token = header.replace(/^Bearer /, "")
  try {
    req.user = jwt.verify(token, SECRET)
    next()
  } catch (err) {
    res.status(401).json({ error: "invalid token" })
  }
}

module.exports = { sign, authMiddleware }
`,
	},
	{
		ID:   "mongodb",
		Name: "MongoDB Connection",
		Tags: []string{"mongodb", "database", "nodejs", "mongoose"},
		Code: `const mongoose = require("mongoose")

const uri = process.env.MONGODB_URI || "mongodb://localhost:27017/hackathon"

async function connect() {
  await mongoose.connect(uri)
  console.log("connected to mongodb")
}

const Item = mongoose.model("Item", new mongoose.Schema({
  name: { type: String, required: true },
  createdAt: { type: Date, default: Date.now }
}))

module.exports = { connect, Item }
`,
	},
	{
		ID:   "postgres",
		Name: "Postgres Connection (psycopg)",
		Tags: []string{"python", "postgres", "database", "sql"},
		Code: `import os
import psycopg

DSN = os.environ.get("DATABASE_URL", "postgresql://localhost/hackathon")

def query(sql, params=()):
    with psycopg.connect(DSN) as conn:
        with conn.cursor() as cur:
            cur.execute(sql, params)
            return cur.fetchall()

rows = query("SELECT id, name FROM items WHERE name ILIKE %s", ("%demo%",))
`,
	},
	{
		ID:   "docker",
		Name: "Dockerfile (Node App)",
		Tags: []string{"docker", "deployment", "nodejs"},
		Code: `FROM node:20-alpine

WORKDIR /app
COPY package*.json ./
RUN npm ci --omit=dev
COPY . .

ENV NODE_ENV=production
EXPOSE 3000
CMD ["node", "server.js"]
`,
	},
	{
		ID:   "websocket",
		Name: "WebSocket Server",
		Tags: []string{"websocket", "realtime", "nodejs"},
		Code: `const { WebSocketServer } = require("ws")

const wss = new WebSocketServer({ port: 8081 })

wss.on("connection", ws => {
  ws.on("message", data => {
    for (const client of wss.clients) {
      if (client.readyState === 1) client.send(data.toString())
    }
  })
})

console.log("websocket server on :8081")
`,
	},
	{
		ID:   "flask",
		Name: "Flask Starter",
		Tags: []string{"python", "flask", "api", "backend"},
		Code: `from flask import Flask, jsonify

app = Flask(__name__)

@app.get("/")
def index():
    return jsonify(status="ok")

@app.get("/items/<int:item_id>")
def item(item_id):
    return jsonify(item_id=item_id)

if __name__ == "__main__":
    app.run(debug=True, port=5000)
`,
	},
}

var defaultFAQs = []FAQ{
	{
		ID:      "cors",
		Problem: "CORS error when calling the backend from the browser",
		Solution: "Your backend must allow the frontend origin. " +
			"Express: `app.use(require(\"cors\")())`. " +
			"FastAPI: add `CORSMiddleware` with `allow_origins=[\"*\"]`. " +
			"Restart the server after adding the middleware.",
		Keywords: []string{"cors", "cross-origin", "blocked", "origin"},
	},
	{
		ID:      "module-not-found",
		Problem: "Module not found / import error after cloning a project",
		Solution: "Dependencies are not installed. Run `npm install` (Node) or " +
			"`pip install -r requirements.txt` (Python) from the project root. " +
			"If the error names a local file, check the import path casing.",
		Keywords: []string{"module", "import", "modulenotfounderror", "cannot find"},
	},
	{
		ID:      "port-in-use",
		Problem: "Port already in use when starting the server",
		Solution: "Another process holds the port. Find it with `lsof -i :3000` " +
			"(mac/linux) or `netstat -ano | findstr :3000` (windows) and kill it, " +
			"or start your server on a different port.",
		Keywords: []string{"port", "eaddrinuse", "address already in use"},
	},
	{
		ID:      "unauthorized",
		Problem: "401 Unauthorized from an API",
		Solution: "The request is missing or sending an invalid credential. Check " +
			"that the API key env var is set, the `Authorization: Bearer <key>` " +
			"header is present, and the key has not expired.",
		Keywords: []string{"401", "unauthorized", "api key", "token"},
	},
	{
		ID:      "connection-refused",
		Problem: "Connection refused when the frontend calls the backend",
		Solution: "The backend is not running or is on a different port. Start it " +
			"first, then confirm the URL the frontend uses matches the port the " +
			"backend prints at startup.",
		Keywords: []string{"econnrefused", "connection refused", "fetch failed"},
	},
	{
		ID:      "build-memory",
		Problem: "JavaScript build crashes with heap out of memory",
		Solution: "Raise the Node heap limit: " +
			"`NODE_OPTIONS=--max-old-space-size=4096 npm run build`. " +
			"Also check for an accidental import of a huge asset.",
		Keywords: []string{"heap", "out of memory", "allocation failed"},
	},
}

var defaultResources = Resources{
	Hackathon: Hackathon{
		Name:     "Hack the Future",
		Theme:    "AI for Good",
		Duration: "48 Hours",
	},
	Rules: []string{
		"Teams of 1-4 people",
		"All code must be written during the event",
		"Open source libraries and public APIs are allowed",
		"Submissions close at the deadline, no exceptions",
		"One submission per team",
	},
	Timeline: []TimelineEntry{
		{Time: "Friday 18:00", Event: "Opening ceremony and team formation"},
		{Time: "Friday 20:00", Event: "Hacking begins"},
		{Time: "Saturday 12:00", Event: "Mentor office hours"},
		{Time: "Sunday 16:00", Event: "Submissions close"},
		{Time: "Sunday 18:00", Event: "Demos and judging"},
		{Time: "Sunday 20:00", Event: "Winners announced"},
	},
	APIs: map[string]API{
		"weather": {
			Name:        "OpenWeather API",
			URL:         "https://api.openweathermap.org",
			Docs:        "https://openweathermap.org/api",
			Description: "Current weather and forecasts, free tier available",
		},
		"maps": {
			Name:        "Mapbox API",
			URL:         "https://api.mapbox.com",
			Docs:        "https://docs.mapbox.com",
			Description: "Maps, geocoding and navigation",
		},
		"llm": {
			Name:        "OpenAI API",
			URL:         "https://api.openai.com",
			Docs:        "https://platform.openai.com/docs",
			Description: "Chat completions and embeddings, event credits provided",
		},
	},
	JudgingCriteria: []JudgingCriterion{
		{Criteria: "Innovation", Weight: "30%", Description: "Originality of the idea and approach"},
		{Criteria: "Technical Execution", Weight: "30%", Description: "Working demo, code quality, difficulty"},
		{Criteria: "Impact", Weight: "25%", Description: "Usefulness and fit with the theme"},
		{Criteria: "Presentation", Weight: "15%", Description: "Clarity of the demo and pitch"},
	},
	Prizes: []Prize{
		{Place: "1st Place", Prize: "$5,000 + incubator interviews"},
		{Place: "2nd Place", Prize: "$2,500"},
		{Place: "3rd Place", Prize: "$1,000"},
		{Place: "Best Beginner Team", Prize: "$500"},
	},
	Contacts: Contacts{
		Organizers:       "organizers@hackthefuture.dev",
		TechnicalSupport: "support@hackthefuture.dev",
		SlackChannel:     "#hack-the-future-help",
	},
}

var defaultQuickActions = []QuickAction{
	{ID: "qa-react", Label: "React Starter", Icon: "⚛️", Category: "snippets", Target: "react"},
	{ID: "qa-fastapi", Label: "FastAPI Starter", Icon: "🐍", Category: "snippets", Target: "fastapi"},
	{ID: "qa-jwt", Label: "JWT Auth", Icon: "🔐", Category: "snippets", Target: "jwt-auth"},
	{ID: "qa-docker", Label: "Dockerfile", Icon: "🐳", Category: "snippets", Target: "docker"},
	{ID: "qa-rules", Label: "Rules", Icon: "📜", Category: "resources", Target: "rules"},
	{ID: "qa-timeline", Label: "Timeline", Icon: "⏰", Category: "resources", Target: "timeline"},
	{ID: "qa-apis", Label: "APIs", Icon: "🔌", Category: "resources", Target: "apis"},
	{ID: "qa-prizes", Label: "Prizes", Icon: "🏆", Category: "resources", Target: "prizes"},
}
