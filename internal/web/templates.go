package web

// pagesHTML holds the form and result pages. The mic buttons are a
// progressive enhancement over the Web Speech API; browsers without it
// get a disabled button and the form still works.
const pagesHTML = `
{{define "style"}}<style>
  :root {
    --bg: #0f172a;
    --muted: #94a3b8;
    --text: #e2e8f0;
    --accent: #38bdf8;
    --card: #1f2937;
  }
  * { box-sizing: border-box; }
  body {
    font-family: "Inter", "Segoe UI", system-ui, -apple-system, sans-serif;
    background: var(--bg);
    color: var(--text);
    max-width: 960px;
    margin: 0 auto;
    padding: 32px 20px 48px;
  }
  h1 { font-size: 28px; margin-bottom: 12px; }
  .lead { color: var(--muted); margin-bottom: 18px; }
  form { background: var(--card); border: 1px solid #1f2937; border-radius: 14px; padding: 20px; }
  .question { margin-bottom: 18px; }
  .question__header { display: flex; justify-content: space-between; align-items: center; gap: 8px; }
  label { font-weight: 700; display: block; margin-bottom: 4px; color: #f8fafc; }
  .hint { color: var(--muted); font-size: 0.9em; margin-bottom: 6px; }
  textarea {
    width: 100%;
    padding: 10px 12px;
    border-radius: 10px;
    border: 1px solid #1f2937;
    background: #0b1220;
    color: var(--text);
    min-height: 68px;
    resize: vertical;
  }
  textarea:focus { outline: 2px solid var(--accent); border-color: var(--accent); }
  .actions { text-align: right; margin-top: 12px; }
  button {
    padding: 10px 16px;
    border: none;
    border-radius: 10px;
    background: linear-gradient(135deg, #38bdf8, #6366f1);
    color: white;
    font-weight: 600;
    cursor: pointer;
  }
  .mic-btn {
    background: #1f2937;
    border: 1px solid #2f3b52;
    color: var(--text);
    padding: 6px 10px;
    border-radius: 8px;
    font-size: 13px;
  }
  .mic-btn.recording { border-color: var(--accent); color: var(--accent); }
  pre { background: #0b1220; padding: 12px; white-space: pre-wrap; border-radius: 12px; border: 1px solid #1f2937; }
  table.answers { border-collapse: collapse; margin-bottom: 18px; }
  table.answers th, table.answers td { border: 1px solid #1f2937; padding: 6px 12px; text-align: left; }
  table.answers th { color: var(--accent); font-weight: 600; }
  a { color: var(--accent); }
</style>{{end}}

{{define "script"}}<script>
  document.addEventListener("DOMContentLoaded", function () {
    var Recognition = window.SpeechRecognition || window.webkitSpeechRecognition;
    if (!Recognition) {
      document.querySelectorAll(".mic-btn").forEach(function (btn) {
        btn.disabled = true;
        btn.textContent = "🎤 语音输入不可用";
        btn.title = "浏览器不支持 Web Speech API";
      });
      return;
    }
    var activeRecognition = null;
    document.body.addEventListener("click", function (e) {
      if (!e.target.matches(".mic-btn")) return;
      var textarea = document.getElementById(e.target.getAttribute("data-target"));
      if (!textarea) return;

      if (activeRecognition) {
        activeRecognition.stop();
        activeRecognition = null;
        document.querySelectorAll(".mic-btn.recording").forEach(function (btn) {
          btn.classList.remove("recording");
        });
        return;
      }

      var recog = new Recognition();
      recog.lang = "zh-CN";
      recog.continuous = false;
      recog.interimResults = false;
      e.target.classList.add("recording");
      recog.onresult = function (event) {
        var transcript = event.results[0][0].transcript;
        var sep = textarea.value ? "\n" : "";
        textarea.value = textarea.value + sep + transcript;
      };
      recog.onend = function () {
        e.target.classList.remove("recording");
        activeRecognition = null;
      };
      recog.onerror = function () {
        e.target.classList.remove("recording");
        activeRecognition = null;
      };
      activeRecognition = recog;
      recog.start();
    });
  });
</script>{{end}}

{{define "form"}}<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Hearback errors 访谈</title>
  {{template "style"}}
  {{template "script"}}
</head>
<body>
  <h1>Hearback errors 访谈</h1>
  <p class="lead">填写以下问题，提交后会生成访谈纪要和结构化回答。可选语音输入需要浏览器支持 Web Speech API（推荐 Chrome）。</p>
  <form method="POST" action="/">
    {{range .Questions}}
    <div class="question">
      <div class="question__header">
        <label for="{{.Key}}">{{.Prompt}}</label>
        <button type="button" class="mic-btn" data-target="{{.Key}}">🎤 语音输入</button>
      </div>
      {{if .Detail}}<div class="hint">{{.Detail}}</div>{{end}}
      <textarea id="{{.Key}}" name="{{.Key}}" rows="2" placeholder="请输入答案"></textarea>
    </div>
    {{end}}
    <div class="actions">
      <button type="submit">生成纪要</button>
    </div>
  </form>
</body>
</html>
{{end}}

{{define "result"}}<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>访谈纪要</title>
  {{template "style"}}
</head>
<body>
  <h2>访谈纪要</h2>
  <pre>{{.Summary}}</pre>
  <h3>结构化回答</h3>
  <table class="answers">
    {{range .Responses}}<tr><th>{{.Key}}</th><td>{{.Answer}}</td></tr>
    {{end}}
  </table>
  <a href="/">返回继续填写</a>
</body>
</html>
{{end}}
`
