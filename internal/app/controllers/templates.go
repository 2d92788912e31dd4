package controllers

// Template names, matching the files under web/templates.
const (
	tmplIndex       = "index.html"
	tmplGroup       = "group.html"
	tmplProfile     = "profile.html"
	tmplPost        = "post.html"
	tmplPostNew     = "post_new.html"
	tmplFollow      = "follow.html"
	tmplLogin       = "login.html"
	tmplSignup      = "signup.html"
	tmplNotFound    = "404.html"
	tmplServerError = "500.html"
)
