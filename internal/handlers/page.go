package handlers

import (
	"net/http"
	"strings"
)

// ContactPageHandler serves GET /contact: the form that feeds /api/contact.
// The page validates for fast feedback; the API re-validates as the authority.
func ContactPageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Contact — Gator Engineered Technologies</title>
<meta name="description" content="Tell us about your project. Web2 + Web3 builds, AI automation, and AEO growth.">
<style>
:root{--bg:#0b1220;--card:#0f1b33;--line:#213055;--text:#e6eefc;--sub:#c6d5f7;--muted:#8fa3c6;--btn:#18356d;--accent:#9cc6ff;--err:#f87171;--radius:12px}
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:Inter,'Segoe UI',Arial,sans-serif;background:var(--bg);color:var(--text);min-height:100vh;font-size:15px;line-height:1.6}
.wrap{max-width:640px;margin:0 auto;padding:48px 20px}
h1{font-size:clamp(1.6rem,4vw,2.2rem);margin-bottom:8px;background:linear-gradient(90deg,#4f9cf9,#7ad1f9);-webkit-background-clip:text;-webkit-text-fill-color:transparent}
.lede{color:var(--sub);margin-bottom:28px}
.card{background:var(--card);border:1px solid var(--line);border-radius:20px;padding:28px 24px}
.field{margin-bottom:16px}
.field label{display:block;font-size:.85rem;font-weight:600;margin-bottom:5px;color:var(--sub)}
.field input,.field textarea{width:100%;padding:11px 14px;border:1px solid var(--line);border-radius:var(--radius);background:#0c1730;color:var(--text);font-family:inherit;font-size:.95rem}
.field textarea{min-height:130px;resize:vertical}
.field input:focus,.field textarea:focus{outline:none;border-color:var(--accent)}
.radio-row{display:flex;gap:20px;margin-top:4px}
.radio-row label{display:flex;align-items:center;gap:6px;font-weight:400;color:var(--text)}
.err{color:var(--err);font-size:.82rem;margin-top:5px;display:none}
.hp{position:absolute;left:-9999px;opacity:0;height:0;width:0}
.btn{display:block;width:100%;padding:14px 20px;background:var(--btn);color:#fff;border:none;border-radius:var(--radius);font-family:inherit;font-size:1rem;font-weight:700;cursor:pointer}
.btn:disabled{opacity:.6;cursor:wait}
#result{display:none;margin-top:16px;padding:12px 16px;border-radius:var(--radius);font-size:.92rem;font-weight:600;text-align:center}
#result.ok{display:block;background:#0c2a1c;color:#7ce3ae}
#result.fail{display:block;background:#2a0f13;color:var(--err)}
</style>
</head>
<body>
<div class="wrap">
<h1>Let&#39;s build something</h1>
<p class="lede">Tell us about your project and we&#39;ll get back within one business day.</p>
<div class="card">
<form id="contactForm" novalidate>
<div class="field"><label for="f-name">Name *</label><input type="text" id="f-name" autocomplete="name"><p class="err" id="e-name"></p></div>
<div class="field"><label for="f-email">Email *</label><input type="email" id="f-email" autocomplete="email"><p class="err" id="e-email"></p></div>
<div class="field"><label for="f-message">Message *</label><textarea id="f-message" placeholder="What are you looking to build?"></textarea><p class="err" id="e-message"></p></div>
<div class="field">
<label>Do you already have a website? *</label>
<div class="radio-row">
<label><input type="radio" name="hasWebsite" value="yes"> Yes</label>
<label><input type="radio" name="hasWebsite" value="no"> No</label>
</div>
<p class="err" id="e-hasWebsite"></p>
</div>
<div class="field" id="websiteField" style="display:none"><label for="f-website">Website URL *</label><input type="url" id="f-website" placeholder="https://..."><p class="err" id="e-website"></p></div>
<input type="text" name="honey" id="f-honey" class="hp" tabindex="-1" autocomplete="off">
<input type="text" name="company" id="f-company" class="hp" tabindex="-1" autocomplete="off">
<button class="btn" id="submitBtn" type="submit">Send message</button>
<div id="result"></div>
</form>
</div>
</div>

<script>
var formOpenedAt=Date.now();
var EMAIL_RX=/^[^\s@]+@[^\s@]+\.[^\s@]+$/;
function hasWebsiteValue(){var el=document.querySelector('input[name="hasWebsite"]:checked');return el?el.value:'';}
function setErr(id,msg){var el=document.getElementById('e-'+id);el.textContent=msg;el.style.display='block';}
function clearErrs(){document.querySelectorAll('.err').forEach(function(e){e.style.display='none';});}
function isValidUrl(s){try{var u=new URL(s);return u.protocol==='http:'||u.protocol==='https:';}catch(e){return false;}}
document.querySelectorAll('input[name="hasWebsite"]').forEach(function(radio){
  radio.addEventListener('change',function(){
    document.getElementById('websiteField').style.display=hasWebsiteValue()==='yes'?'block':'none';
  });
});
document.getElementById('contactForm').addEventListener('submit',function(ev){
  ev.preventDefault();
  clearErrs();
  var name=document.getElementById('f-name').value.trim();
  var email=document.getElementById('f-email').value.trim();
  var message=document.getElementById('f-message').value.trim();
  var hasWebsite=hasWebsiteValue();
  var website=document.getElementById('f-website').value.trim();
  var bad=false;
  if(!name){setErr('name','Name is required.');bad=true;}
  if(!email){setErr('email','Email is required.');bad=true;}
  else if(!EMAIL_RX.test(email)){setErr('email','Enter a valid email.');bad=true;}
  if(!message){setErr('message','Message is required.');bad=true;}
  if(hasWebsite!=='yes'&&hasWebsite!=='no'){setErr('hasWebsite','Please choose Yes or No.');bad=true;}
  if(hasWebsite==='yes'){
    if(!website){setErr('website','Website is required if you have one.');bad=true;}
    else if(!isValidUrl(website)){setErr('website','Enter a valid URL (https://...).');bad=true;}
  }
  if(bad)return;

  var btn=document.getElementById('submitBtn');
  var result=document.getElementById('result');
  btn.disabled=true;btn.textContent='Sending...';result.className='';

  var body={
    name:name,
    email:email,
    message:message,
    hasWebsite:hasWebsite==='yes',
    website:hasWebsite==='yes'?website:'',
    honey:document.getElementById('f-honey').value||'',
    company:document.getElementById('f-company').value||'',
    meta:{
      page:location.pathname,
      ts:new Date().toISOString(),
      userAgent:navigator.userAgent,
      timeSpentMs:Date.now()-formOpenedAt,
      source:'gatorengineered.com/contact'
    }
  };

  fetch('/api/contact',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify(body)})
  .then(function(r){return r.json().then(function(j){return{status:r.status,json:j};});})
  .then(function(res){
    if(res.status===200&&res.json.ok){
      result.className='ok';
      result.textContent='Thanks! Your message is on its way.';
      document.getElementById('contactForm').reset();
      document.getElementById('websiteField').style.display='none';
      formOpenedAt=Date.now();
    }else{
      result.className='fail';
      result.textContent=res.json.error||'Something went wrong. Please try again.';
    }
  })
  .catch(function(){
    result.className='fail';
    result.textContent='Connection error. Check your network and try again.';
  })
  .finally(function(){
    btn.disabled=false;btn.textContent='Send message';
  });
});
</script>
</body>
</html>`)

	w.Write([]byte(sb.String()))
}
