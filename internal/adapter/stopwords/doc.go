// Package stopwords supplies stopword sets to the cleaner.
//
// Providers are consulted once at startup and hand back an immutable
// domain.StopwordSet; nothing in this package is read implicitly by the
// stopword remover. The embedded provider serves the bundled English list,
// NLTKProvider downloads the NLTK stopwords corpus, CachingProvider keeps
// downloaded lists in a StopwordCache, and FileProvider reads custom word
// lists matched by glob patterns.
package stopwords
