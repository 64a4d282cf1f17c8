package aheui

// header is the C prelude emitted before any generated block: type
// definitions, the storage array, and the small set of primitives blocks
// are allowed to call (spec.md §6). A stack stores values by plain index;
// a queue stores them in a ring buffer addressed by head+size, since the
// generated code never materializes a queue's untouched region and must
// keep inserting and removing at its true physical ends.
const header = `#include <stdint.h>
#include <stdio.h>

typedef int64_t integer;

#define STACK_CAPACITY 65536
#define QUEUE_CAPACITY 65536

typedef struct {
    integer memory[STACK_CAPACITY];
} stack_t;

typedef struct {
    integer memory[QUEUE_CAPACITY];
    int head;
} queue_t;

typedef union {
    stack_t stack;
    queue_t queue;
} storage_t;

static storage_t storage[28];
static int size[28];

static inline void push_stack(stack_t *s, int idx, integer value) {
    s->memory[idx] = value;
}

static inline integer pop_queue(queue_t *q) {
    integer v = q->memory[q->head % QUEUE_CAPACITY];
    q->head = (q->head + 1) % QUEUE_CAPACITY;
    size[21]--;
    return v;
}

static inline void push_queue(queue_t *q, integer value, int new_size) {
    q->memory[(q->head + size[21]) % QUEUE_CAPACITY] = value;
    size[21] = new_size;
}

static inline integer halt_value_stack(int idx) {
    if (size[idx] > 0) {
        return storage[idx].stack.memory[size[idx] - 1];
    }
    return 0;
}

static inline integer halt_value_queue(void) {
    if (size[21] > 0) {
        return storage[21].queue.memory[storage[21].queue.head % QUEUE_CAPACITY];
    }
    return 0;
}

typedef struct {
    FILE *f;
} stream_t;

static stream_t output = { NULL };
static stream_t input = { NULL };

static inline void flush(stream_t *s) {
    if (s->f) {
        fflush(s->f);
    }
}

static inline void print_decimal(stream_t *s, integer v) {
    fprintf(s->f, "%lld", (long long)v);
}

static inline void print_utf8(stream_t *s, integer v) {
    unsigned int cp = (unsigned int)v;
    if (cp < 0x80) {
        fputc(cp, s->f);
    } else if (cp < 0x800) {
        fputc(0xC0 | (cp >> 6), s->f);
        fputc(0x80 | (cp & 0x3F), s->f);
    } else if (cp < 0x10000) {
        fputc(0xE0 | (cp >> 12), s->f);
        fputc(0x80 | ((cp >> 6) & 0x3F), s->f);
        fputc(0x80 | (cp & 0x3F), s->f);
    } else {
        fputc(0xF0 | (cp >> 18), s->f);
        fputc(0x80 | ((cp >> 12) & 0x3F), s->f);
        fputc(0x80 | ((cp >> 6) & 0x3F), s->f);
        fputc(0x80 | (cp & 0x3F), s->f);
    }
}

static inline integer scan_decimal(stream_t *s) {
    long long v = 0;
    if (fscanf(s->f, "%lld", &v) != 1) {
        return 0;
    }
    return (integer)v;
}

static inline integer scan_utf8(stream_t *s) {
    int c0 = fgetc(s->f);
    if (c0 == EOF) {
        return 0;
    }
    if ((c0 & 0x80) == 0) {
        return c0;
    }
    int extra = 0;
    unsigned int cp = 0;
    if ((c0 & 0xE0) == 0xC0) {
        extra = 1;
        cp = c0 & 0x1F;
    } else if ((c0 & 0xF0) == 0xE0) {
        extra = 2;
        cp = c0 & 0x0F;
    } else if ((c0 & 0xF8) == 0xF0) {
        extra = 3;
        cp = c0 & 0x07;
    }
    for (int i = 0; i < extra; i++) {
        int c = fgetc(s->f);
        if (c == EOF) {
            break;
        }
        cp = (cp << 6) | (c & 0x3F);
    }
    return (integer)cp;
}

int main(void) {
    output.f = stdout;
    input.f = stdin;
    goto B0;
`

// footer closes the main function opened by header.
const footer = `}
`
