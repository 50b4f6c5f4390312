package handle

import "net/http"

// Minimal form page. The real presentation layer ships separately; this keeps
// the service usable from a browser on its own.
const homePage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Cloud Architect AI</title></head>
<body>
<h1>Cloud Architect AI</h1>
<p>Describe your project and get a Google Cloud architecture recommendation.</p>
<textarea id="prompt" rows="8" cols="80" placeholder="Describe your software project..."></textarea><br>
<button onclick="generate()">Generate</button>
<pre id="out"></pre>
<script>
async function generate() {
  const prompt = document.getElementById('prompt').value;
  const res = await fetch('/generate', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({prompt})
  });
  const data = await res.json();
  document.getElementById('out').textContent =
    data.status === 'success' ? data.response : 'Error: ' + data.error;
}
</script>
</body>
</html>
`

// Home serves the form page at exactly "/".
func (h *Handle) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(homePage))
}
